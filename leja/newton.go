package leja

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Func is a scalar function of a single complex argument, evaluated at Ritz
// values and Leja points to build a Newton interpolant.
type Func func(complex128) complex128

// ErrDividedDifferenceBreakdown is returned when the product of scaled
// point separations that a new divided difference is divided by falls to
// 1e-200 or below in magnitude, signalling that the supplied Leja points
// are not distinct enough in scaled coordinates to continue the
// recurrence safely.
var ErrDividedDifferenceBreakdown = errors.New("leja: divided difference breakdown")

// ExtendCoefficients extends *coef, which already holds nA coefficients
// computed from points[:nA], to hold targetLen coefficients of f on
// points[:targetLen], and returns the new coefficient count (targetLen on
// success). Each new coefficient is folded down against every earlier one
// using the classic nested divided-difference recurrence, scaled by radius
// so that the point separations (points[n]-points[i])/r stay O(1) across
// restarts instead of drifting with the raw spectral spread. The radius
// passed here must match every past and future call against this *coef
// buffer; changing it invalidates the coefficients already stored.
//
// For each new point the running product of its scaled separations from
// the earlier points is checked before every division; once its magnitude
// is 1e-200 or below, ExtendCoefficients stops with
// ErrDividedDifferenceBreakdown and returns the count of coefficients
// completed so far.
//
// When nA is zero the recurrence is seeded with coef[0] = f(points[0]).
// ExtendCoefficients never reads points[targetLen:]. Storage growth uses
// the same doubling policy as the Leja sequence.
func ExtendCoefficients(coef *[]complex128, points []complex128, nA, targetLen int, radius float64, f Func) (int, error) {
	growTo(coef, nA, targetLen)

	start := nA
	if nA == 0 {
		if targetLen == 0 {
			return 0, nil
		}
		(*coef)[0] = f(points[0])
		start = 1
	}

	r := complex(radius, 0)
	for n := start; n < targetLen; n++ {
		d := f(points[n])
		prod := complex(1, 0)
		for i := 0; i < n; i++ {
			denom := (points[n] - points[i]) / r
			prod *= denom
			if cmplx.Abs(prod) <= 1e-200 {
				return n, fmt.Errorf("%w: |product of scaled separations|=%.3e for point %d through point %d", ErrDividedDifferenceBreakdown, cmplx.Abs(prod), n, i)
			}
			d = (d - (*coef)[i]) / denom
		}
		(*coef)[n] = d
	}
	return targetLen, nil
}
