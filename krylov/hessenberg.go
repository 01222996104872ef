// Package krylov builds the orthonormal Krylov basis and Hessenberg
// projection of a linear operator (the Arnoldi engine), and extracts the
// Ritz-value spectrum of its leading principal submatrices.
package krylov

import "fmt"

// Hessenberg is a dense, complex, square matrix stored as a single flat
// buffer with row-major stride equal to its side. Side is fixed at
// construction (m_max+1); entries outside the leading (m+1)x(m+1) block are
// zero after every Arnoldi call, per the Arnoldi contract.
//
// A flat buffer sidesteps per-row allocation and keeps the matrix cache
// friendly at the sizes this kernel uses (m_max rarely exceeds a few dozen).
type Hessenberg struct {
	side int
	data []complex128
}

// NewHessenberg allocates a zeroed Hessenberg matrix of the given side.
func NewHessenberg(side int) *Hessenberg {
	return &Hessenberg{side: side, data: make([]complex128, side*side)}
}

// Side returns the matrix's fixed dimension.
func (h *Hessenberg) Side() int { return h.side }

// Get returns H[i][j], zero-indexed.
func (h *Hessenberg) Get(i, j int) complex128 { return h.data[i*h.side+j] }

// Set assigns H[i][j], zero-indexed.
func (h *Hessenberg) Set(i, j int, v complex128) { h.data[i*h.side+j] = v }

// Zero resets every entry to zero in place, without reallocating.
func (h *Hessenberg) Zero() {
	for i := range h.data {
		h.data[i] = 0
	}
}

func (h *Hessenberg) String() string {
	return fmt.Sprintf("Hessenberg(side=%d)", h.side)
}
