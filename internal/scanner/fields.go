package scanner

import (
	"bufio"
	"bytes"
)

// SplitFields is a bufio.SplitFunc that returns one header field per token,
// including any folded continuation lines, but without the final line break.
// Lines are expected to end in LF or CRLF.
//
// Lines before the first field that start with whitespace or contain no colon
// are skipped. A later line with no colon that does not start with whitespace
// is also skipped. The scan ends at the first blank line, which marks the end
// of the header.
var SplitFields = MakeSplitFuncExitByAdvance(splitField)

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// lineEnd returns the offset just past the LF ending the line that starts at
// offset start. The second value is false when more data is needed to find it.
func lineEnd(data []byte, start int, atEOF bool) (int, bool) {
	if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
		return start + i + 1, true
	}

	if atEOF {
		return len(data), true
	}

	return 0, false
}

func splitField(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	end, ok := lineEnd(data, 0, atEOF)
	if !ok {
		return 0, nil, nil
	}

	line := bytes.TrimRight(data[:end], "\r\n")
	switch {
	case len(line) == 0:
		return end, nil, bufio.ErrFinalToken
	case isSpace(line[0]) || !bytes.Contains(line, []byte{':'}):
		return end, nil, nil
	}

	for {
		if end >= len(data) {
			if !atEOF {
				return 0, nil, nil
			}
			break
		}

		if !isSpace(data[end]) {
			break
		}

		next, ok := lineEnd(data, end, atEOF)
		if !ok {
			return 0, nil, nil
		}
		end = next
	}

	return end, bytes.TrimRight(data[:end], "\r\n"), nil
}
