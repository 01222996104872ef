// Package leja selects Leja interpolation nodes from a candidate pool of
// Ritz values and computes the Newton divided differences of a scalar
// function on the resulting sequence.
package leja

import (
	"math"
	"math/cmplx"
)

// Extend appends up to nUse candidates to *seq, which already holds n
// selected Leja points, growing *seq as needed. Selection is greedy
// product-distance maximization: at each step the candidate maximizing
// prod_j |z - L_j|^e wins, where e = 1/(n+nUse) is fixed for the whole
// call so the product stays O(1) instead of overflowing or underflowing
// after many restarts. The winning candidate is removed from the pool by
// swapping the last remaining candidate into its slot.
//
// When *seq is empty the first point is chosen by a separate linear scan
// for the candidate of greatest magnitude — the empty product gives every
// candidate p(z)=1, so the generic rule carries no information yet and the
// bootstrap anchors the sequence near the outer spectral radius instead.
//
// If the candidate pool is exhausted before nUse points have been chosen,
// remaining iterations are silent no-ops; Extend returns the number of
// points actually appended along with the new total length.
//
// Extend reorders candidates in place as it swap-removes winners instead
// of copying the pool, so it stays allocation-free on the restart-loop
// hot path; callers must treat candidates as consumed after the call.
func Extend(seq *[]complex128, n int, candidates []complex128, nUse int) (appended, newLen int) {
	if nUse <= 0 {
		return 0, n
	}
	target := n + nUse
	growTo(seq, n, target)

	pool := candidates
	e := 1.0 / float64(target)

	for appended < nUse && len(pool) > 0 {
		var choice int
		if n+appended == 0 {
			choice = argmaxAbs(pool)
		} else {
			choice = argmaxProductDistance(pool, (*seq)[:n+appended], e)
		}
		(*seq)[n+appended] = pool[choice]
		appended++

		last := len(pool) - 1
		pool[choice] = pool[last]
		pool = pool[:last]
	}
	return appended, n + appended
}

func argmaxAbs(pool []complex128) int {
	choice := 0
	best := cmplx.Abs(pool[0])
	for i := 1; i < len(pool); i++ {
		if a := cmplx.Abs(pool[i]); a > best {
			best, choice = a, i
		}
	}
	return choice
}

func argmaxProductDistance(pool, selected []complex128, e float64) int {
	choice := 0
	best := -1.0
	for i, z := range pool {
		p := 1.0
		for _, l := range selected {
			d := cmplx.Abs(z - l)
			p *= math.Pow(d, e)
		}
		if p > best {
			best, choice = p, i
		}
	}
	return choice
}
