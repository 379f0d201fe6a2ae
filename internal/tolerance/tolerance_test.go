package tolerance_test

import (
	"math"
	"testing"

	"github.com/leonardinius/floatdiff/internal/differrors"
	"github.com/leonardinius/floatdiff/internal/tolerance"
	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	testcases := []struct {
		name  string
		a, b  float64
		tol   float64
		close bool
	}{
		{"equal", 1, 1, 1e-6, true},
		{"zero tolerance equal", 2.5, 2.5, 0, true},
		{"zero tolerance unequal", 2.5, 2.5000001, 0, false},
		{"within absolute", 1.0, 1.0000001, 1e-6, true},
		{"half tolerance", 1.0, 1.0000005, 1e-6, true},
		{"boundary outside", 1.0, 1.000002, 1e-6, false},
		{"boundary inside looser", 1.0, 1.000002, 1e-5, true},
		{"relative on large values", 1e9, 1e9 + 500, 1e-6, true},
		{"relative on large values outside", 1e9, 1e9 + 2000, 1e-6, false},
		{"absolute floor near zero", 0, 1e-7, 1e-6, true},
		{"near zero outside", 0, 2e-6, 1e-6, false},
		{"opposite signs", -1, 1, 1e-6, false},
		{"equal infinities", inf, inf, 1e-6, true},
		{"opposite infinities", inf, -inf, 1e-6, false},
		{"infinity and finite", inf, math.MaxFloat64, 1, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
		{"nan and number", math.NaN(), 1, 1, false},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tol := tolerance.New(tc.tol)
			assert.Equal(t, tc.close, tol.Close(tc.a, tc.b))
			assert.Equal(t, tc.close, tol.Close(tc.b, tc.a), "closeness must be symmetric")
		})
	}
}

func TestCloseSymmetric(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1e-9, -1e-9, 1, -1, 1.0000005, 3.14159, 1e300, -1e300, math.SmallestNonzeroFloat64, math.Inf(1)}
	tols := []float64{0, 1e-12, 1e-6, 1e-3, 0.5, 2}
	for _, tv := range tols {
		tol := tolerance.New(tv)
		for _, a := range values {
			for _, b := range values {
				assert.Equal(t, tol.Close(a, b), tol.Close(b, a), "tol=%v a=%v b=%v", tv, a, b)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, tolerance.New(0).Validate())
	assert.NoError(t, tolerance.New(tolerance.Default).Validate())

	err := tolerance.New(-1e-6).Validate()
	assert.ErrorIs(t, err, differrors.ErrNegativeTolerance)
	assert.EqualError(t, err, `invalid tolerance "-1e-06": tolerances must be non-negative`)

	assert.ErrorIs(t, tolerance.New(math.NaN()).Validate(), differrors.ErrNegativeTolerance)
	assert.ErrorIs(t, tolerance.Tolerance{Rel: 1e-6, Abs: -1}.Validate(), differrors.ErrNegativeTolerance)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1e-06", tolerance.New(tolerance.Default).String())
	assert.Equal(t, "0.001", tolerance.New(0.001).String())
	assert.Equal(t, "1.0", tolerance.New(1).String())
	assert.Equal(t, "rel=1e-06 abs=0.0", tolerance.Tolerance{Rel: 1e-6}.String())
}
