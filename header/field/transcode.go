package field

import (
	"encoding/base64"
	"io"
	"mime"
	"strings"
	"sync"
	"unicode/utf8"

	"braces.dev/errtrace"
)

const upperhex = "0123456789ABCDEF"

// Codec moves field bodies between their decoded, native unicode form and the
// printable US-ASCII form written into a header, applying folding and RFC 2047
// encoded-words as needed.
type Codec struct {
	cfg Config
	dec *mime.WordDecoder
}

// NewCodec returns a Codec for the given configuration or an error if the
// configuration is invalid.
func NewCodec(cfg Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return newCodec(cfg), nil
}

func newCodec(cfg Config) *Codec {
	return &Codec{
		cfg: cfg,
		dec: &mime.WordDecoder{
			CharsetReader: func(charset string, r io.Reader) (io.Reader, error) {
				return CharsetDecoderToCharsetReader(CharsetDecoder)(charset, r)
			},
		},
	}
}

// defaultCodec is used by fields that were not built with New, NewEmpty, or
// Parse.
var defaultCodec = sync.OnceValue(func() *Codec {
	return newCodec(DefaultConfig())
})

// Config returns the configuration of the codec.
func (c *Codec) Config() Config { return c.cfg }

// Decode transforms a raw field body into its logical text. Folds are removed
// first and then each encoded-word is replaced by its decoded text. When two
// encoded-words are separated by nothing but whitespace, that whitespace is
// dropped and the words run together, as required by RFC 2047. Whitespace
// between an encoded-word and ordinary text is kept.
//
// An error is returned only when an encoded-word names a charset that
// CharsetDecoder does not support. Malformed encoded-words are left as they
// are.
func (c *Codec) Decode(raw string) (string, error) {
	body := Unfold(raw)
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	return errtrace.Wrap2(c.dec.DecodeHeader(body))
}

// Encode transforms the decoded text of a body into the form written after
// "name: " in the header.
//
// If the charset is ASCII and the text is made only of printable US-ASCII,
// spaces, and tabs (and does not contain "=?", which would be mistaken for an
// encoded-word), it is folded at whitespace to fit within MaxLineLength.
// Otherwise, or when there is no whitespace to fold at, it is written as a
// series of encoded-words, each on its own line. The words use the configured
// Charset unless it cannot hold every character of the text, in which case
// they use UTF-8.
//
// The result always decodes back to the original text with Decode.
func (c *Codec) Encode(body, name string, cs Charset) string {
	first := c.cfg.MaxLineLength - len(name) - len(": ")
	if cs == ASCII && Classify(body) == ASCII && !strings.Contains(body, "=?") {
		if folded, ok := fold(body, first, c.cfg.MaxLineLength); ok {
			return folded
		}
	}

	return c.encodeWords(body, first)
}

// wordCharset picks the charset for the encoded-words of body. A charset that
// cannot carry the text through CharsetEncoder and back through CharsetDecoder
// unchanged is replaced by DefaultCharset.
func (c *Codec) wordCharset(body string) string {
	cs := c.cfg.Charset
	if isUTF8(cs) {
		return cs
	}

	bs, err := CharsetEncoder(cs, body)
	if err != nil {
		return DefaultCharset
	}

	if s, err := CharsetDecoder(cs, bs); err != nil || s != body {
		return DefaultCharset
	}

	return cs
}

func isUTF8(charset string) bool {
	return strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8")
}

// encodeWords writes the body as encoded-words. Words are cut on rune
// boundaries. The first word fits in first bytes and every other word, along
// with the space that indents it, fits within MaxLineLength. Each word always
// carries at least one rune, even if the field name leaves no room for it on
// the first line.
func (c *Codec) encodeWords(body string, first int) string {
	cs := c.wordCharset(body)
	open := c.cfg.wordOpen(cs)
	overhead := len(open) + len("?=")

	var b strings.Builder
	room := first
	for len(body) > 0 {
		n, payload := c.nextWord(body, cs, room-overhead)

		if b.Len() > 0 {
			b.WriteString("\r\n ")
		}
		b.WriteString(open)
		b.WriteString(payload)
		b.WriteString("?=")

		body = body[n:]
		room = c.cfg.MaxLineLength - len(" ")
	}

	return b.String()
}

// nextWord takes as many runes from the front of the body as fit in an
// encoded payload of at most room bytes, but never less than one. The runes
// are written in the charset cs. It returns
// the number of bytes of body consumed and the encoded payload.
func (c *Codec) nextWord(body, cs string, room int) (int, string) {
	var raw []byte
	qLen, n := 0, 0
	for n < len(body) {
		r, size := utf8.DecodeRuneInString(body[n:])
		rb := charsetBytes(cs, r)

		var encLen int
		if c.cfg.WordEncoding == mime.BEncoding {
			encLen = base64.StdEncoding.EncodedLen(len(raw) + len(rb))
		} else {
			encLen = qLen
			for _, x := range rb {
				encLen += qLen1(x)
			}
		}

		if encLen > room && n > 0 {
			break
		}

		raw = append(raw, rb...)
		qLen = encLen
		n += size
	}

	if c.cfg.WordEncoding == mime.BEncoding {
		return n, base64.StdEncoding.EncodeToString(raw)
	}
	return n, qEncode(raw)
}

// charsetBytes returns the rune encoded in the charset. A rune the charset
// cannot represent becomes the ASCII substitution character, which
// wordCharset rules out before any word is written.
func charsetBytes(cs string, r rune) []byte {
	if isUTF8(cs) {
		return []byte(string(r))
	}

	bs, err := CharsetEncoder(cs, string(r))
	if err != nil || len(bs) == 0 {
		return []byte{'\x1a'}
	}
	return bs
}

// qLiteral is true for bytes written as themselves in a Q-encoded word.
func qLiteral(b byte) bool {
	return b > ' ' && b <= '~' && b != '=' && b != '?' && b != '_'
}

// qLen1 is the number of characters a byte takes when Q-encoded.
func qLen1(b byte) int {
	if b == ' ' || qLiteral(b) {
		return 1
	}
	return 3
}

// qEncode applies the Q encoding of RFC 2047 to the bytes.
func qEncode(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw) * 3)
	for _, x := range raw {
		switch {
		case x == ' ':
			b.WriteByte('_')
		case qLiteral(x):
			b.WriteByte(x)
		default:
			b.WriteByte('=')
			b.WriteByte(upperhex[x>>4])
			b.WriteByte(upperhex[x&0x0f])
		}
	}
	return b.String()
}
