package token

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads text as a float64.
//
// Accepted: decimal and scientific notation with an optional sign, the
// case-insensitive words inf, infinity and nan (signed or not), and single
// underscores between digits. Values out of float64 range saturate to ±Inf
// or zero and still count as numbers. Hexadecimal forms are rejected.
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	unsigned := s
	if unsigned[0] == '+' || unsigned[0] == '-' {
		unsigned = unsigned[1:]
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}

	if strings.IndexByte(s, '_') >= 0 {
		var ok bool
		if s, ok = stripDigitSeparators(s); !ok {
			return 0, false
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// stripDigitSeparators drops underscores that sit between two digits and
// rejects any other underscore.
func stripDigitSeparators(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
