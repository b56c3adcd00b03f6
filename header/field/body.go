package field

import (
	"strings"
	"unicode/utf8"
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// isText is true for the bytes that may appear unencoded in a header body:
// printable US-ASCII, the space and the horizontal tab.
func isText(c byte) bool { return (c >= ' ' && c <= '~') || c == '\t' }

// foldAt returns true when the body holds a legal fold at offset i, which is a
// CRLF followed by at least one space or tab.
func foldAt(body string, i int) bool {
	return i+2 < len(body) &&
		body[i] == '\r' &&
		body[i+1] == '\n' &&
		isSpace(body[i+2])
}

// ValidBody returns true if the body may be placed into a header as-is. Once
// the folds are removed, every remaining byte must be printable US-ASCII, a
// space, or a tab. A CR or LF that is not part of a fold makes the body
// invalid, as does any other control character or any 8-bit byte.
func ValidBody(body string) bool {
	for i := 0; i < len(body); i++ {
		if foldAt(body, i) {
			i++ // skip the LF, the whitespace is checked next time around
			continue
		}

		if !isText(body[i]) {
			return false
		}
	}

	return true
}

// CanBeEncoded returns true if the body can be output as a sequence of
// printable US-ASCII lines with legal folding, possibly after being turned
// into encoded-words. The body must be valid UTF-8 and must not contain
// control characters other than the tab and legal folds.
func CanBeEncoded(body string) bool {
	if !utf8.ValidString(body) {
		return false
	}

	for i, c := range body {
		switch {
		case c == '\t':
		case c == '\r':
			if !foldAt(body, i) {
				return false
			}
		case c == '\n':
			if i == 0 || body[i-1] != '\r' || !foldAt(body, i-1) {
				return false
			}
		case c < ' ', c == 0x7f, c >= 0x80 && c < 0xa0:
			return false
		}
	}

	return true
}

// Unfold removes the line breaks of every fold found in the body, leaving the
// whitespace that followed them in place. This gives you the logical value of
// a folded body.
func Unfold(body string) string {
	if !strings.ContainsAny(body, "\r\n") {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if foldAt(body, i) {
			i++
			continue
		}
		b.WriteByte(body[i])
	}

	return b.String()
}
