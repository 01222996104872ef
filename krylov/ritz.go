package krylov

import "math/cmplx"

// Spectrum returns the Ritz values of hess's leading m x m block. When
// accumulate is true it instead returns the concatenation of the
// eigenvalues of every leading k x k block for k = 1..m, laid out as a flat
// array of length m(m+1)/2 with block k occupying positions
// (k-1)k/2 .. (k-1)k/2+k-1. Ordering within a block is unspecified; callers
// (the Leja selector) must treat each block as an unordered candidate set.
func Spectrum(hess *Hessenberg, m int, accumulate bool) []complex128 {
	if !accumulate {
		return blockEigenvalues(hess, m)
	}
	out := make([]complex128, m*(m+1)/2)
	for k := 1; k <= m; k++ {
		copy(out[(k-1)*k/2:], blockEigenvalues(hess, k))
	}
	return out
}

// blockEigenvalues returns the eigenvalues of hess's leading k x k block.
func blockEigenvalues(hess *Hessenberg, k int) []complex128 {
	switch k {
	case 1:
		return []complex128{hess.Get(0, 0)}
	case 2:
		a, b := hess.Get(0, 0), hess.Get(0, 1)
		c, d := hess.Get(1, 0), hess.Get(1, 1)
		disc := cmplx.Sqrt(a*a + 4*b*c - 2*a*d + d*d)
		return []complex128{(a + d + disc) / 2, (a + d - disc) / 2}
	default:
		block := make([]complex128, k*k)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				block[i*k+j] = hess.Get(i, j)
			}
		}
		return hessenbergQR(block, k)
	}
}
