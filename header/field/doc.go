// Package field parses, validates, and renders a single email header field.
//
// Parse is liberal in what it accepts: the name may be in any case and
// surrounded by whitespace, the body may be folded or made of RFC 2047
// encoded-words, and subjects may even arrive as raw UTF-8. The Field it
// returns holds the normalized name and the decoded body. Rendering is strict:
// the output is printable US-ASCII, folded so no line is longer than the
// configured maximum, and anything that cannot be written as plain text is
// written as encoded-words. A body that cannot be made to fit those rules is
// rejected when it is set.
//
// The Codec does the encoding and decoding. Its behavior is controlled by a
// Config, built from Options passed to New, NewEmpty, or Parse.
package field
