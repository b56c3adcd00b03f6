package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailfield/header/field"
)

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"Subject", true},
		{"X-Mailer", true},
		{"!~", true},
		{"", false},
		{"a:b", false},
		{"a b", false},
		{"tab\tname", false},
		{"caf\xc3\xa9", false},
		{"del\x7f", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, field.ValidName(tt.name), "ValidName(%q)", tt.name)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"content_type", "Content-Type"},
		{"Content-Type", "Content-Type"},
		{"content type", "Content-Type"},
		{"x-mailer", "X-Mailer"},
		{"MIME-version", "MIME-Version"},
		{"subject", "Subject"},
		{"_x_", "X"},
		{"a__b", "A-B"},
		{"---", ""},
		{"", ""},

		// only ASCII letters are capitalized
		{"ıd", "ıd"},
		{"ſubject", "ſubject"},
		{"élan", "élan"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, field.NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}

func TestMakeMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "content-type", field.MakeMatch("  Content-Type "))
	assert.Equal(t, "subject", field.MakeMatch("SUBJECT"))
}

func TestNormalizeName_NonASCII(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"ıd", "ſubject"} {
		f, err := field.NewEmpty()
		require.NoError(t, err)

		err = f.SetName(name)
		assert.ErrorIs(t, err, field.ErrInvalidName, "SetName(%q)", name)
		assert.Empty(t, f.Name(), "SetName(%q)", name)
	}
}
