package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekEncoding_LeavesCache(t *testing.T) {
	t.Parallel()

	f, err := New("X-Test", "naïve")
	require.NoError(t, err)

	assert.Equal(t, UTF8, f.PeekEncoding())
	assert.False(t, f.encodingSet)

	assert.Equal(t, UTF8, f.Encoding())
	assert.True(t, f.encodingSet)
}
