package krylov

import (
	"fmt"

	"propagator/maths"
)

// Operator exposes left-multiplication by a Vector: Apply(x, y) sets y = H*x.
// y is caller-preallocated and of the same length as x; no other structural
// information about H (no spectral access, no transpose) is assumed or used.
type Operator interface {
	Apply(x, y maths.Vector[complex128])
}

// Arnoldi builds the orthonormal Krylov basis and the Hessenberg projection
// of H*dt via modified Gram-Schmidt, starting from the unit-norm seed.
//
// hess must have side >= m+1 and basis must have length >= m+1; both are
// contract violations (programming faults) if undersized, and panic.
// Entries of hess outside the achieved leading block are left zero.
//
// extended makes the last of the m steps also record Hess[m,m-1]
// (zero-indexed) and normalize the (m+1)-th basis vector, needed by the
// restart driver to estimate the truncation error and seed the next
// restart. normMin is the breakdown threshold: if the residual norm before
// normalizing basis[j+1] falls below it, the Krylov subspace has been
// exhausted (an invariant subspace), which is not an error — the achieved
// dimension m' < m is returned and basis[j+1] is left un-normalized.
//
// The second return value reports whether that early exit actually
// happened. A caller that always requests the same order m cannot tell
// "broke down at step m'" apart from "completed normally and m' just
// happens to equal the requested order" by looking at m' alone — that
// distinction matters to callers that special-case a breakdown at m'=1
// (the seed itself is an eigenvector), since a workspace whose requested
// order is already 1 hits m'=1 on every ordinary, non-degenerate call too.
func Arnoldi(hess *Hessenberg, basis []maths.Vector[complex128], m int, seed maths.Vector[complex128], op Operator, dt complex128, extended bool, normMin float64) (int, bool) {
	if hess.Side() < m+1 {
		panic(fmt.Errorf("krylov: Arnoldi: Hessenberg side too small for requested order: %w", maths.ErrDimensionMismatch))
	}
	if len(basis) < m+1 {
		panic(fmt.Errorf("krylov: Arnoldi: basis too short for requested order: %w", maths.ErrDimensionMismatch))
	}

	hess.Zero()
	seed.Copy(basis[0])

	for j := 0; j < m; j++ {
		op.Apply(basis[j], basis[j+1])

		for i := 0; i <= j; i++ {
			hij := dt * basis[i].Inner(basis[j+1])
			hess.Set(i, j, hij)
			basis[j+1].AXPY(-hij/dt, basis[i])
		}

		if j < m-1 || extended {
			h := basis[j+1].Norm()
			hess.Set(j+1, j, dt*complex(h, 0))
			if h < normMin {
				return j + 1, true
			}
			basis[j+1].Scale(complex(1/h, 0))
		}
	}
	return m, false
}
