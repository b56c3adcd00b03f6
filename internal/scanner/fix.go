// Package scanner holds bufio.SplitFunc helpers for reading header text a
// field at a time.
package scanner

import "bufio"

// MakeSplitFuncExitByAdvance wraps a bufio.SplitFunc so that it may consume
// input without producing a token. A bufio.Scanner ends the scan when the
// split function returns a nil token at EOF, so a split function that wants to
// skip over some input has to loop internally until it finds a token worth
// returning. The wrapper provides that loop: it calls split again on the
// remaining data whenever split advances without returning a token.
//
// The wrapper returns to the scanner as soon as split returns a token, an
// error, asks for more data by advancing zero bytes, or consumes all the data.
// The advance returned is the total of every advance made along the way.
func MakeSplitFuncExitByAdvance(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		totalAdvance := 0
		for {
			advance, token, err := split(data, atEOF)

			// len(data)-advance < 0 is an error in split, which bufio.Scanner
			// reports when it sees the advance.
			if token != nil || err != nil || advance == 0 || len(data)-advance <= 0 {
				return totalAdvance + advance, token, err
			}

			data = data[advance:]
			totalAdvance += advance
		}
	}
}
