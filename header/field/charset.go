package field

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Charset names the character set a field body needs on output.
type Charset string

// These are the charsets Classify reports.
const (
	ASCII Charset = "ASCII"
	UTF8  Charset = "UTF-8"
)

// Valid returns true for the charsets a Field will accept from SetEncoding.
func (c Charset) Valid() bool {
	return c == ASCII || c == UTF8
}

// Classify reports ASCII when every byte of the body is printable US-ASCII
// (space through tilde) or a horizontal tab. Anything else is UTF8.
func Classify(body string) Charset {
	for i := 0; i < len(body); i++ {
		if !isText(body[i]) {
			return UTF8
		}
	}
	return ASCII
}

// Encoder represents the character encoding function used to transform a
// native unicode string into the bytes of the given charset before it is
// placed into an encoded-word.
//
// If the target charset is not supported, bytes should be returned as nil and
// an error should be returned.
type Encoder func(charset, s string) ([]byte, error)

// Decoder represents the character decoding function used to transform the
// payload of an encoded-word from the given charset into native unicode.
//
// Any byte present in the input that is invalid for the source charset should
// be replaced with unicode.ReplacementChar. If the source charset is not
// supported, an error should be returned.
type Decoder func(charset string, b []byte) (string, error)

var (
	// CharsetEncoder is the Encoder used when writing encoded-words. To handle
	// a wide variety of charsets, import the encoding package:
	//  import _ "github.com/zostay/go-mailfield/header/encoding"
	CharsetEncoder Encoder = DefaultCharsetEncoder

	// CharsetDecoder is the Decoder used when reading encoded-words. To handle
	// a wide variety of charsets, import the encoding package:
	//  import _ "github.com/zostay/go-mailfield/header/encoding"
	CharsetDecoder Decoder = DefaultCharsetDecoder
)

// DefaultCharsetEncoder is the default encoder. It is able to handle us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will result in an
// error.
//
// When outputting us-ascii or latin1, any character that does not fit will be
// replaced with "\x1a", which is the ASCII SUB character.
func DefaultCharsetEncoder(charset, s string) ([]byte, error) {
	var limit rune
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii", "":
		limit = unicode.MaxASCII
	case "iso-8859-1", "latin1":
		limit = unicode.MaxLatin1
	case "utf-8", "utf8":
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unsupported byte encoding %q", charset)
	}

	var buf bytes.Buffer
	for _, c := range s {
		if c > limit {
			buf.WriteByte('\x1a') // ASCII substitution char
		} else {
			buf.WriteByte(byte(c))
		}
	}
	return buf.Bytes(), nil
}

// DefaultCharsetDecoder is the default decoder. It is able to handle us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will result in an
// error.
//
// When us-ascii is input, any 8-bit byte is translated into
// unicode.ReplacementChar. When utf-8 is input, invalid sequences are brought
// in as unicode.ReplacementChar.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	var s strings.Builder
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii", "":
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
	case "iso-8859-1", "latin1":
		for _, c := range b {
			s.WriteRune(rune(c))
		}
	case "utf-8", "utf8":
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
	return s.String(), nil
}

// CharsetDecoderToCharsetReader transforms a Decoder into the CharsetReader
// used by mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		bs, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, bs)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}
