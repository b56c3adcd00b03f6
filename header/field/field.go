package field

import (
	"io"
	"strings"

	"braces.dev/errtrace"
)

// Format selects the form of the body returned by GetBody.
type Format int

// These are the formats accepted by GetBody.
const (
	FormatRaw     Format = iota // the decoded text, as set
	FormatEncoded               // folded and encoded, ready for the header
)

// Field is a single header field: a normalized name, the decoded text of its
// body, and an optional explicit output encoding.
//
// The zero value is an empty field that renders with DefaultConfig.
//
// A Field is not internally synchronized. Concurrent reads are safe only while
// nothing modifies the field, and Encoding counts as a modification the first
// time it computes the charset. Use Clone to hand an independent copy to
// another goroutine.
type Field struct {
	name  string
	body  string
	codec *Codec

	encoding    Charset
	encodingSet bool
}

// NewEmpty returns a field without a name or body. The name must be set before
// the field can be rendered.
func NewEmpty(opts ...Option) (*Field, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	codec, err := NewCodec(cfg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &Field{codec: codec}, nil
}

// New returns a field with the given name and body. The name is normalized as
// described for SetName and the body must pass SetBody.
func New(name, body string, opts ...Option) (*Field, error) {
	f, err := NewEmpty(opts...)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if err := f.SetName(name); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if err := f.SetBody(body); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return f, nil
}

// Clone returns a copy of the field that can be modified independently.
func (f *Field) Clone() *Field {
	c := *f
	return &c
}

// Codec returns the codec the field uses to encode its body.
func (f *Field) Codec() *Codec {
	if f.codec == nil {
		return defaultCodec()
	}
	return f.codec
}

// Name returns the normalized name of the field.
func (f *Field) Name() string { return f.name }

// Match returns the name in the form used to compare field names.
func (f *Field) Match() string { return MakeMatch(f.name) }

// SetName normalizes and sets the name of the field. The name is normalized by
// NormalizeName and must then pass ValidName. On error, the field is left
// unchanged.
func (f *Field) SetName(name string) error {
	n := NormalizeName(name)
	if n == "" {
		return errtrace.Wrap(&ValidationError{PartName, name, ErrEmptyName})
	}

	if !ValidName(n) {
		return errtrace.Wrap(&ValidationError{PartName, name, ErrInvalidName})
	}

	f.name = n
	return nil
}

// Body returns the decoded text of the body.
func (f *Field) Body() string { return f.body }

// EncodedBody returns the body as it will be written into the header, folded
// and encoded.
func (f *Field) EncodedBody() string {
	return f.Codec().Encode(f.body, f.name, f.Encoding())
}

// GetBody returns the body in the requested format.
func (f *Field) GetBody(format Format) string {
	if format == FormatEncoded {
		return f.EncodedBody()
	}
	return f.body
}

// SetBody sets the decoded text of the body. The body is rejected unless
// CanBeEncoded reports it can be written into a header. Setting the body
// clears any encoding set with SetEncoding.
func (f *Field) SetBody(body string) error {
	if !CanBeEncoded(body) {
		return errtrace.Wrap(&ValidationError{PartBody, body, ErrUnencodableBody})
	}

	f.body = body
	f.encoding, f.encodingSet = "", false
	return nil
}

// SetEncoding forces the charset used to write the body. Setting UTF8 on an
// ASCII body causes it to be written as encoded-words. Setting ASCII on a body
// that needs more than ASCII has no effect on the output, which is still
// encoded.
func (f *Field) SetEncoding(cs Charset) error {
	if !cs.Valid() {
		return errtrace.Wrap(&ValidationError{PartEncoding, string(cs), ErrInvalidCharset})
	}

	f.encoding, f.encodingSet = cs, true
	return nil
}

// Encoding returns the charset set with SetEncoding. If none has been set, it
// is computed from the body with Classify and remembered until the body
// changes.
func (f *Field) Encoding() Charset {
	if !f.encodingSet {
		f.encoding, f.encodingSet = Classify(f.body), true
	}
	return f.encoding
}

// PeekEncoding returns the same charset as Encoding, but does not remember a
// computed charset, so it leaves the field unchanged.
func (f *Field) PeekEncoding() Charset {
	if f.encodingSet {
		return f.encoding
	}
	return Classify(f.body)
}

// Render returns the complete field, "Name: body", with the body folded and
// encoded. There is no trailing line break. It returns a StateError if no name
// has been set.
func (f *Field) Render() (string, error) {
	if f.name == "" {
		return "", errtrace.Wrap(&StateError{ErrNoName})
	}

	var b strings.Builder
	b.WriteString(f.name)
	b.WriteString(": ")
	b.WriteString(f.EncodedBody())
	return b.String(), nil
}

// String returns the rendered field or an empty string if the field cannot be
// rendered.
func (f *Field) String() string {
	s, err := f.Render()
	if err != nil {
		return ""
	}
	return s
}

// Bytes returns the rendered field as a slice of bytes.
func (f *Field) Bytes() ([]byte, error) {
	s, err := f.Render()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// WriteTo writes the rendered field to the writer. Nothing is written if the
// field cannot be rendered.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	s, err := f.Render()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	n, err := io.WriteString(w, s)
	return int64(n), errtrace.Wrap(err)
}
