package field

import "strings"

// ValidName returns true if the name is usable as a header field name. It must
// be non-empty and contain only printable US-ASCII characters other than the
// colon.
func ValidName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < '!' || c > '~' || c == ':' {
			return false
		}
	}

	return true
}

// NormalizeName puts a field name into capitalized-word form. Underscores,
// hyphens and spaces separate words. The first letter of every word is
// upper-cased and the words are joined with hyphens, so "content_type",
// "content type" and "Content-Type" all become "Content-Type". The remaining
// letters of each word are left as given. Only ASCII letters change case.
func NormalizeName(name string) string {
	words := strings.FieldsFunc(name, isNameDelim)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for i, w := range words {
		if i > 0 {
			b.WriteByte('-')
		}

		if c := w[0]; c >= 'a' && c <= 'z' {
			b.WriteByte(c - 'a' + 'A')
			w = w[1:]
		}
		b.WriteString(w)
	}

	return b.String()
}

func isNameDelim(c rune) bool { return c == '_' || c == '-' || c == ' ' }

// MakeMatch trims space and lowers the case of a header name for comparison
// purposes.
func MakeMatch(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
