package field

import (
	"errors"
	"fmt"
)

// Errors describing why a field could not be parsed, modified, or rendered.
// These are wrapped by FormatError, ValidationError, and StateError, so match
// them with errors.Is.
var (
	// ErrNoColon is returned when a header field line has no colon to
	// separate the name from the body.
	ErrNoColon = errors.New("header field must match the format \"name: value\"")

	// ErrEmptyName is returned when setting a name that is empty once it has
	// been normalized.
	ErrEmptyName = errors.New("header field name must not be empty")

	// ErrInvalidName is returned when a name contains something other than
	// printable US-ASCII characters or contains a colon.
	ErrInvalidName = errors.New("header field name must be composed of printable US-ASCII characters, except colon")

	// ErrInvalidBody is returned by Parse when the body contains characters
	// that are not permitted in a header or contains a malformed fold.
	ErrInvalidBody = errors.New("header field body must be composed of printable US-ASCII characters and valid folding sequences")

	// ErrUnencodableBody is returned by SetBody when the body cannot be
	// represented as printable US-ASCII, even after encoding.
	ErrUnencodableBody = errors.New("header field body cannot be encoded as printable US-ASCII with valid folding sequences")

	// ErrInvalidCharset is returned by SetEncoding when given a charset other
	// than ASCII or UTF8.
	ErrInvalidCharset = errors.New("header field encoding must be ASCII or UTF-8")

	// ErrNoName is returned when rendering a field that has no name.
	ErrNoName = errors.New("header field name is not set, use SetName()")
)

// FormatError is returned by Parse when the line does not have the shape of a
// header field at all.
type FormatError struct {
	Line string // the line that failed to parse
	Err  error
}

// Error returns the error message.
func (err *FormatError) Error() string {
	return fmt.Sprintf("malformed header field %q: %v", err.Line, err.Err)
}

// Unwrap returns the underlying reason.
func (err *FormatError) Unwrap() error { return err.Err }

// Parts of a field named by ValidationError.
const (
	PartName     = "name"
	PartBody     = "body"
	PartEncoding = "encoding"
)

// ValidationError is returned when a field name, body, or encoding is
// rejected.
type ValidationError struct {
	Part  string // PartName, PartBody, or PartEncoding
	Value string // the rejected value
	Err   error
}

// Error returns the error message.
func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid header field %s %q: %v", err.Part, err.Value, err.Err)
}

// Unwrap returns the underlying reason.
func (err *ValidationError) Unwrap() error { return err.Err }

// StateError is returned when a field is asked to do something it is not ready
// to do, such as rendering before a name has been set.
type StateError struct {
	Err error
}

// Error returns the error message.
func (err *StateError) Error() string { return err.Err.Error() }

// Unwrap returns the underlying reason.
func (err *StateError) Unwrap() error { return err.Err }
