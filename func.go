package propagator

import (
	"math/cmplx"

	"propagator/krylov"
	"propagator/leja"
)

// Func is a scalar analytic function evaluated at the Ritz values and Leja
// points of H·dt to build the Newton interpolant. Aliased from the leja
// package so both packages share one type without an import cycle between
// this package and the Newton-coefficient engine it drives.
type Func = leja.Func

// Operator exposes left-multiplication by the large linear operator H; it
// is the only way this package touches H, never assuming any other
// structure. Aliased from the krylov package for the same reason as Func.
type Operator = krylov.Operator

// DefaultFunc is the quantum-mechanical propagator f(z) = exp(-iz), used
// when Propagate is not given WithFunc.
func DefaultFunc(z complex128) complex128 {
	return cmplx.Exp(complex(0, -1) * z)
}
