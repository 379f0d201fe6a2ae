// Package floatfmt renders float64 values the way mismatch reports print them.
package floatfmt

import (
	"math"
	"strconv"
	"strings"
)

// Repr returns the shortest text that reads back as f.
//
// Integral values keep a trailing ".0". Decimal exponents below -4 or at
// least 16 switch to scientific form with a two-digit minimum exponent, so
// 1e-6 prints as "1e-06" and 1e16 as "1e+16".
func Repr(f float64) string {
	if s, ok := special(f); ok {
		return s
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	_, exp, _ := strings.Cut(sci, "e")
	x, err := strconv.Atoi(exp)
	if err != nil || x < -4 || x >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// General formats f with prec significant digits in %g style, trailing zeros
// removed.
func General(f float64, prec int) string {
	if s, ok := special(f); ok {
		return s
	}
	return strconv.FormatFloat(f, 'g', prec, 64)
}

func special(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "nan", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}
