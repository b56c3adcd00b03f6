package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mailfield v0.1.0\n", out)

	_, _, err = run(t, "", "version", "extra")
	assert.Error(t, err)
}
