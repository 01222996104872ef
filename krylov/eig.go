package krylov

import (
	"math"
	"math/cmplx"
)

// hessenbergQR computes the eigenvalues of an n x n complex upper Hessenberg
// matrix stored flat, row-major, in h (which is mutated in place).
//
// This is the general complex eigenvalue routine the leading k x k
// Hessenberg blocks are handed to for k >= 3. No cgo-free, general
// complex eigensolver exists among the retrieved libraries — gonum's
// mat.Eigen takes a real matrix; LAPACK's Zgeev needs a cgo build. The
// routine below is an explicitly shifted single-shift QR iteration with
// deflation (the shift is the bottom diagonal entry of the active block,
// replaced by the Wilkinson shift on every eighth iteration),
// following the structure of the real Hessenberg-QR ("hqr") algorithm in
// Nykakin-eigenvalues__eigenvalues.go, simplified for direct complex
// arithmetic: a complex Schur form has genuinely 1x1 diagonal blocks, so
// the real algorithm's 2x2-block bookkeeping for conjugate pairs drops out.
func hessenbergQR(h []complex128, n int) []complex128 {
	eig := make([]complex128, n)
	get := func(i, j int) complex128 { return h[i*n+j] }
	set := func(i, j int, v complex128) { h[i*n+j] = v }

	const maxIterPerEigenvalue = 60
	p := n
	for p > 0 {
		if p == 1 {
			eig[0] = get(0, 0)
			break
		}

		iter := 0
		for {
			l := p - 1
			for l > 0 {
				s := cmplx.Abs(get(l-1, l-1)) + cmplx.Abs(get(l, l))
				if s == 0 {
					s = 1
				}
				if cmplx.Abs(get(l, l-1)) < 1e-14*s {
					break
				}
				l--
			}
			if l == p-1 {
				eig[p-1] = get(p-1, p-1)
				p--
				break
			}

			iter++
			if iter > maxIterPerEigenvalue {
				// Stagnation: accept the diagonal entry and deflate anyway.
				// Ritz values are approximations already — the outer
				// convergence test is driven by residual norm, not by
				// eigenvalue accuracy, so a stale value here is harmless.
				eig[p-1] = get(p-1, p-1)
				p--
				break
			}

			mu := get(p-1, p-1)
			if iter%8 == 0 {
				mu = wilkinsonShift(get(p-2, p-2), get(p-2, p-1), get(p-1, p-2), get(p-1, p-1))
			}
			for i := l; i < p; i++ {
				set(i, i, get(i, i)-mu)
			}

			qrStep(get, set, n, l, p)

			for i := l; i < p; i++ {
				set(i, i, get(i, i)+mu)
			}
		}
	}
	return eig
}

// qrStep performs one implicit-shift-free QR step on the active block
// [l,p) of an n x n matrix accessed through get/set: it zeroes the
// subdiagonal with Givens rotations (forming R), then unwinds the same
// rotations on the right (forming R*Q), which restores upper-Hessenberg
// form in the active block.
func qrStep(get func(i, j int) complex128, set func(i, j int, v complex128), n, l, p int) {
	type rot struct {
		c float64
		s complex128
	}
	rots := make([]rot, p-l-1)
	for i := l; i < p-1; i++ {
		a, b := get(i, i), get(i+1, i)
		c, s, r := givens(a, b)
		rots[i-l] = rot{c, s}
		set(i, i, r)
		set(i+1, i, 0)
		for j := i + 1; j < n; j++ {
			x, y := get(i, j), get(i+1, j)
			set(i, j, complex(c, 0)*x+s*y)
			set(i+1, j, -cmplx.Conj(s)*x+complex(c, 0)*y)
		}
	}
	for i := l; i < p-1; i++ {
		c, s := rots[i-l].c, rots[i-l].s
		for row := 0; row <= i+1 && row < n; row++ {
			x, y := get(row, i), get(row, i+1)
			set(row, i, x*complex(c, 0)+y*cmplx.Conj(s))
			set(row, i+1, -x*s+y*complex(c, 0))
		}
	}
}

// givens returns c (real), s (complex), r such that
// [[c, s], [-conj(s), c]] * [a, b]^T = [r, 0]^T.
func givens(a, b complex128) (c float64, s complex128, r complex128) {
	if b == 0 {
		return 1, 0, a
	}
	if a == 0 {
		return 0, 1, b
	}
	absA, absB := cmplx.Abs(a), cmplx.Abs(b)
	norm := math.Hypot(absA, absB)
	phase := a / complex(absA, 0)
	c = absA / norm
	s = phase * cmplx.Conj(b) / complex(norm, 0)
	r = phase * complex(norm, 0)
	return c, s, r
}

// wilkinsonShift returns the eigenvalue of [[a,b],[c,d]] closest to d.
func wilkinsonShift(a, b, c, d complex128) complex128 {
	tr := a + d
	det := a*d - b*c
	disc := cmplx.Sqrt(tr*tr - 4*det)
	l1 := (tr + disc) / 2
	l2 := (tr - disc) / 2
	if cmplx.Abs(l1-d) < cmplx.Abs(l2-d) {
		return l1
	}
	return l2
}
