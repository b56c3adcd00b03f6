package field

import (
	"bytes"
	"strings"

	"braces.dev/errtrace"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header field. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header field"
}

// Line represents the unparsed content for a complete header field line,
// including any folded continuation lines.
type Line []byte

// Lines represents the unparsed content for zero or more header field lines.
type Lines []Line

// ParseLines splits a block of header text into Lines, one per field, ready to
// feed into Parse. Lines are split after each lb, which is usually "\r\n".
//
// A new field starts on any line that does not start with a space or tab and
// contains a colon. After the first such line is encountered, any other line
// is treated as a continuation of the field before it. If the first lines of
// input start with spaces or contain no colons, they are skipped and a
// BadStartError is returned along with the Lines that were found.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}

		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if err != nil {
		return h, errtrace.Wrap(err)
	}
	return h, nil
}

// Parse builds a field from a single header field line, "Name: body", which
// may include folded continuation lines but should not include the final line
// break.
//
// The name and body are trimmed of surrounding whitespace. The name is
// lower-cased and any configured PreEncoder matching it rewrites the body. The
// name must then pass ValidName and the body ValidBody. The body is decoded
// and both are set on the new field, the name being normalized by SetName.
//
// A FormatError is returned if the line has no colon. A ValidationError is
// returned if the name or body are rejected. If an encoded-word in the body
// uses a charset that cannot be decoded, the body is kept as it was written.
func Parse(line string, opts ...Option) (*Field, error) {
	f, err := NewEmpty(opts...)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	rawName, rawBody, found := strings.Cut(line, ":")
	if !found {
		return nil, errtrace.Wrap(&FormatError{line, ErrNoColon})
	}

	name := strings.ToLower(strings.TrimSpace(rawName))
	body := preEncode(f.codec.cfg.PreEncoders, name, strings.TrimSpace(rawBody))

	if !ValidName(name) {
		return nil, errtrace.Wrap(&ValidationError{PartName, name, ErrInvalidName})
	}

	if !ValidBody(body) {
		return nil, errtrace.Wrap(&ValidationError{PartBody, body, ErrInvalidBody})
	}

	if dec, err := f.codec.Decode(body); err == nil {
		body = dec
	}

	if err := f.SetName(name); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if err := f.SetBody(body); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return f, nil
}
