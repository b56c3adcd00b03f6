package field

//go:generate mockgen -source=preencode.go -destination=fieldmock/preencoder.go -package=fieldmock

import (
	"encoding/base64"
	"strings"
)

// PreEncoder rewrites the body of a specific kind of header field while it is
// being parsed. Parse asks each configured PreEncoder whether it Matches the
// lower-cased field name and, if so, hands it the trimmed body before the body
// is validated and decoded.
type PreEncoder interface {
	// Matches returns true if the PreEncoder applies to the named field. The
	// name is trimmed and lower-cased.
	Matches(name string) bool

	// PreEncode returns the replacement for the trimmed body.
	PreEncode(body string) string
}

// SubjectPreEncoder lets raw 8-bit subjects through Parse. It applies to every
// field whose name contains "subject". Any body that is not already an
// encoded-word is unfolded and wrapped whole in a single base64 encoded-word,
// which the decoding step of Parse turns right back into the original text.
// An empty body is left alone.
type SubjectPreEncoder struct {
	// Charset is the charset label placed on the encoded-word. It defaults
	// to DefaultCharset.
	Charset string
}

// Matches returns true for any name containing "subject".
func (p SubjectPreEncoder) Matches(name string) bool {
	return strings.Contains(name, "subject")
}

// PreEncode wraps the body in an encoded-word unless it is empty or already
// starts with one.
func (p SubjectPreEncoder) PreEncode(body string) string {
	if body == "" || strings.HasPrefix(body, "=?") {
		return body
	}

	cs := p.Charset
	if cs == "" {
		cs = DefaultCharset
	}

	return "=?" + cs + "?B?" + base64.StdEncoding.EncodeToString([]byte(Unfold(body))) + "?="
}

// preEncode runs the body through every matching PreEncoder.
func preEncode(pes []PreEncoder, name, body string) string {
	for _, pe := range pes {
		if pe.Matches(name) {
			body = pe.PreEncode(body)
		}
	}
	return body
}
