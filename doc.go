// Package mailfield works with single email header fields, the "Name: body"
// lines at the top of a message.
//
// The work is done by the header/field package. A field.Field holds a
// normalized name and the decoded text of its body. field.Parse builds one
// from a line of header text, checking the name and body and decoding any RFC
// 2047 encoded-words. Rendering goes the other way: a body made of printable
// US-ASCII is folded to fit the configured line length, and anything else is
// written as encoded-words, so the result is always safe to place in a header
// and always parses back to the same text.
//
// Charsets other than US-ASCII, ISO-8859-1, and UTF-8 are supported once the
// header/encoding package is imported:
//
//	import _ "github.com/zostay/go-mailfield/header/encoding"
//
// The mailfield command in tools/mailfield exposes parsing, encoding, and a
// round-trip check from the command line.
package mailfield
