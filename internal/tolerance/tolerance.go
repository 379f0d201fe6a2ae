// Package tolerance decides whether two numbers are close enough to be equal.
package tolerance

import (
	"fmt"
	"math"

	"github.com/leonardinius/floatdiff/internal/differrors"
	"github.com/leonardinius/floatdiff/internal/floatfmt"
)

// Default is used when no tolerance is given.
const Default = 1e-6

// Tolerance combines a relative bound, scaled by the larger operand
// magnitude, with an absolute floor.
type Tolerance struct {
	Rel float64
	Abs float64
}

// New returns a Tolerance using tol as both the relative and absolute bound.
func New(tol float64) Tolerance {
	return Tolerance{Rel: tol, Abs: tol}
}

// Validate rejects negative and NaN bounds.
func (t Tolerance) Validate() error {
	if !(t.Rel >= 0) || !(t.Abs >= 0) {
		return differrors.NewToleranceError(t.String(), differrors.ErrNegativeTolerance)
	}
	return nil
}

// Close reports |a-b| <= max(Rel*max(|a|,|b|), Abs). Equal values, equal
// infinities included, are always close. NaN is never close to anything.
// Close(a, b) == Close(b, a).
func (t Tolerance) Close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	bound := math.Max(t.Rel*math.Max(math.Abs(a), math.Abs(b)), t.Abs)
	return diff <= bound
}

// String implements fmt.Stringer.
func (t Tolerance) String() string {
	if t.Rel == t.Abs {
		return floatfmt.Repr(t.Abs)
	}
	return fmt.Sprintf("rel=%s abs=%s", floatfmt.Repr(t.Rel), floatfmt.Repr(t.Abs))
}

var _ fmt.Stringer = Tolerance{}
