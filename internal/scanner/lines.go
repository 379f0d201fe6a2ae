package scanner

import (
	"bufio"
	"bytes"
	"io"
	"math"
)

const initialLineBuffer = 64 * 1024

// ReadLines reads r to the end and returns its lines without terminators.
// "\n", "\r\n" and a lone "\r" each end a line. Empty input has no lines.
func ReadLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	s.Split(scanLines)

	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is a bufio.SplitFunc that treats "\n", "\r\n" and "\r" alike.
func scanLines(data []byte, atEOF bool) (advance int, tok []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
