package field_test

import (
	"mime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailfield/header/field"
)

func newCodec(t *testing.T, opts ...field.Option) *field.Codec {
	t.Helper()

	cfg, err := field.NewConfig(opts...)
	require.NoError(t, err)

	c, err := field.NewCodec(cfg)
	require.NoError(t, err)

	return c
}

// assertWireLines checks that the rendered field is printable US-ASCII, that
// each physical line fits in max, and that every continuation line is
// indented.
func assertWireLines(t *testing.T, rendered string, max int) {
	t.Helper()

	for i, line := range strings.Split(rendered, "\r\n") {
		assert.LessOrEqual(t, len(line), max, "line %d is too long: %q", i, line)
		if i > 0 {
			require.NotEmpty(t, line, "line %d is empty", i)
			assert.Contains(t, " \t", line[:1], "line %d is not indented: %q", i, line)
		}
		for j := 0; j < len(line); j++ {
			c := line[j]
			assert.True(t, (c >= ' ' && c <= '~') || c == '\t', "line %d has non-printable byte %q", i, c)
		}
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	c := newCodec(t)
	assert.Equal(t, "hello world", c.Encode("hello world", "Subject", field.ASCII))
	assert.Equal(t, "", c.Encode("", "Subject", field.ASCII))
	assert.Equal(t,
		"=?UTF-8?Q?=E2=9A=80=E2=9A=81=E2=9A=82=E2=9A=83=E2=9A=84=E2=9A=85?=",
		c.Encode("⚀⚁⚂⚃⚄⚅", "Subject", field.UTF8))
	assert.Equal(t,
		"=?UTF-8?Q?=E2=98=BA_smile?=",
		c.Encode("☺ smile", "Subject", field.UTF8))

	// forcing UTF-8 on ASCII text still encodes it
	assert.Equal(t, "=?UTF-8?Q?hello_world?=", c.Encode("hello world", "Subject", field.UTF8))

	// text that looks like an encoded-word must not be left bare
	assert.Equal(t, "=?UTF-8?Q?=3D=3Fnot=3F=3D?=", c.Encode("=?not?=", "Subject", field.ASCII))

	// ASCII requested for non-ASCII text is ignored
	assert.Equal(t, "=?UTF-8?Q?caf=C3=A9?=", c.Encode("café", "Subject", field.ASCII))

	b := newCodec(t, field.WithWordEncoding(mime.BEncoding))
	assert.Equal(t,
		"=?UTF-8?B?4pqA4pqB4pqC4pqD4pqE4pqF?=",
		b.Encode("⚀⚁⚂⚃⚄⚅", "Subject", field.UTF8))
}

func TestEncode_Split(t *testing.T) {
	t.Parallel()

	q := newCodec(t, field.WithMaxLineLength(30))
	enc := q.Encode("☺☺☺☺", "X", field.UTF8)
	assert.Equal(t,
		"=?UTF-8?Q?=E2=98=BA?=\r\n =?UTF-8?Q?=E2=98=BA?=\r\n =?UTF-8?Q?=E2=98=BA?=\r\n =?UTF-8?Q?=E2=98=BA?=",
		enc)
	assertWireLines(t, "X: "+enc, 30)

	b := newCodec(t, field.WithMaxLineLength(30), field.WithWordEncoding(mime.BEncoding))
	enc = b.Encode("☺☺☺☺", "X", field.UTF8)
	assert.Equal(t, "=?UTF-8?B?4pi64pi64pi6?=\r\n =?UTF-8?B?4pi6?=", enc)
	assertWireLines(t, "X: "+enc, 30)
}

func TestEncode_Fold200(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("abcdefghi ", 19) + "abcdefghij"
	require.Len(t, body, 200)

	c := newCodec(t)
	enc := c.Encode(body, "X-Long", field.ASCII)

	assert.GreaterOrEqual(t, strings.Count(enc, "\r\n "), 2)
	assert.NotContains(t, enc, "=?")
	assertWireLines(t, "X-Long: "+enc, field.DefaultMaxLineLength)

	dec, err := c.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, body, dec)
}

func TestEncode_Unfoldable(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("a", 200)

	c := newCodec(t)
	enc := c.Encode(body, "X-Long", field.ASCII)

	assert.True(t, strings.HasPrefix(enc, "=?UTF-8?Q?"))
	assertWireLines(t, "X-Long: "+enc, field.DefaultMaxLineLength)

	dec, err := c.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, body, dec)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	c := newCodec(t)

	tests := []struct {
		raw, want string
	}{
		{"plain text", "plain text"},
		{"folded\r\n text", "folded text"},
		{"=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=", "⚀⚁⚂⚃⚄⚅"},
		{"=?UTF-8?Q?Emulator=20Behind=20The=20Scenes?=", "Emulator Behind The Scenes"},
		{"=?utf-8?Q?Example?= <devsupport@example.com>", "Example <devsupport@example.com>"},
		{"=?iso-8859-1?q?caf=E9?=", "café"},

		// adjacent encoded-words run together, whitespace and all
		{"=?UTF-8?Q?a?= =?UTF-8?Q?b?=", "ab"},
		{"=?UTF-8?Q?a?=\r\n =?UTF-8?Q?b?=", "ab"},
		{"=?UTF-8?Q?a_?=\r\n\t=?UTF-8?Q?b?=", "a b"},

		// but not whitespace next to ordinary text
		{"x =?UTF-8?Q?a?= y", "x a y"},

		// malformed words are left alone
		{"=?UTF-8?X?a?=", "=?UTF-8?X?a?="},
		{"=? not a word", "=? not a word"},
	}

	for _, tt := range tests {
		got, err := c.Decode(tt.raw)
		if assert.NoError(t, err, "Decode(%q)", tt.raw) {
			assert.Equal(t, tt.want, got, "Decode(%q)", tt.raw)
		}
	}
}

func TestDecode_UnknownCharset(t *testing.T) {
	t.Parallel()

	c := newCodec(t)
	_, err := c.Decode("=?x-no-such-charset?q?abc?=")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	bodies := []string{
		"",
		"hello world",
		"  leading and trailing  ",
		"tab\tseparated\tvalues",
		"=?utf-8?q?looks_encoded?=",
		"under_score and ?question? and =equals=",
		"café crème brûlée",
		"Εν αρχη ητο ο Λογος, και ο Λογος ητο παρα τω Θεω, και Θεος ητο ο Λογος.",
		"emoji 🖊 in the middle 🖊",
		"folded\r\n body",
		strings.Repeat("word ", 60),
		strings.Repeat("x", 500),
		strings.Repeat("日本語", 40),
	}

	codecs := map[string]*field.Codec{
		"Q":   newCodec(t),
		"B":   newCodec(t, field.WithWordEncoding(mime.BEncoding)),
		"Q30": newCodec(t, field.WithMaxLineLength(30)),
		"B30": newCodec(t, field.WithMaxLineLength(30), field.WithWordEncoding(mime.BEncoding)),
	}

	for label, c := range codecs {
		max := c.Config().MaxLineLength
		for _, body := range bodies {
			require.True(t, field.CanBeEncoded(body))

			for _, cs := range []field.Charset{field.ASCII, field.UTF8} {
				enc := c.Encode(body, "X", cs)
				assertWireLines(t, "X: "+enc, max)

				dec, err := c.Decode(enc)
				require.NoError(t, err)
				if diff := cmp.Diff(body, dec); diff != "" {
					t.Errorf("%s/%s: Decode(Encode(%q)) mismatch (-want +got):\n%s", label, cs, body, diff)
				}
			}
		}
	}
}
