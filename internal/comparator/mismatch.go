package comparator

import (
	"fmt"

	"github.com/leonardinius/floatdiff/internal/floatfmt"
	"github.com/leonardinius/floatdiff/internal/token"
	"github.com/leonardinius/floatdiff/internal/tolerance"
)

// Kind classifies a Mismatch.
type Kind int

const (
	LengthMismatch Kind = iota + 1
	TokenCountMismatch
	NumericMismatch
	LiteralMismatch
)

func (k Kind) String() string {
	switch k {
	case LengthMismatch:
		return "length"
	case TokenCountMismatch:
		return "token-count"
	case NumericMismatch:
		return "numeric"
	case LiteralMismatch:
		return "literal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mismatch is one discrepancy between the two inputs. Line is 1-based.
// A and B are set for token-level kinds only; CountA and CountB for
// TokenCountMismatch only.
type Mismatch struct {
	Kind      Kind
	Line      int
	CountA    int
	CountB    int
	A, B      token.Token
	Tolerance tolerance.Tolerance
}

// Delta is the signed difference A - B of a numeric mismatch.
func (m Mismatch) Delta() float64 {
	return m.A.Value - m.B.Value
}

// String implements fmt.Stringer and yields the report line.
func (m Mismatch) String() string {
	switch m.Kind {
	case LengthMismatch:
		return fmt.Sprintf("Line %d: file length mismatch", m.Line)
	case TokenCountMismatch:
		return fmt.Sprintf("Line %d: token count mismatch (%d vs %d)", m.Line, m.CountA, m.CountB)
	case NumericMismatch:
		return fmt.Sprintf("(Line %d, fa = %s, fb = %s, Δ = %s, tol = %s)",
			m.Line, floatfmt.Repr(m.A.Value), floatfmt.Repr(m.B.Value), floatfmt.General(m.Delta(), 4), m.Tolerance)
	case LiteralMismatch:
		return fmt.Sprintf("Line %d, token %d: '%s' != '%s'", m.Line, m.A.Pos, m.A.Text, m.B.Text)
	}
	return fmt.Sprintf("Line %d: %s", m.Line, m.Kind)
}

var _ fmt.Stringer = Mismatch{}
