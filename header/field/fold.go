package field

import "strings"

// hasText is true when s holds at least one character other than a space or
// tab.
func hasText(s string) bool {
	return strings.TrimLeft(s, " \t") != ""
}

// fold inserts a CRLF in front of existing whitespace so that the first line
// of the body is no longer than first bytes and every later line is no longer
// than max bytes, counting the whitespace that starts it. Only the line breaks
// are added, so Unfold gives back exactly the body passed in.
//
// A fold is never placed where it would leave a line holding nothing but
// whitespace. If some run of text cannot be broken up to fit, fold returns
// false and the body must be encoded some other way.
func fold(body string, first, max int) (string, bool) {
	if len(body) <= first {
		return body, true
	}

	var b strings.Builder
	b.Grow(len(body) + len(body)/max*2 + 2)

	start, limit := 0, first
	for len(body)-start > limit {
		brk := -1
		for i := start + limit; i > start; i-- {
			if isSpace(body[i]) && hasText(body[start:i]) && hasText(body[i:]) {
				brk = i
				break
			}
		}

		if brk < 0 {
			return "", false
		}

		b.WriteString(body[start:brk])
		b.WriteString("\r\n")
		start, limit = brk, max
	}
	b.WriteString(body[start:])

	return b.String(), true
}
