package propagator

import (
	"propagator/krylov"
	"propagator/maths"
)

// RestartSnapshot records one restart iteration's residual state for
// diagnostics; it never feeds back into the numerics.
type RestartSnapshot struct {
	Beta  float64
	NA    int
	NLeja int
}

// Workspace owns every allocation a call to Propagate needs: the Krylov
// basis, the restart seed, the Leja and Newton-coefficient arrays, the
// Newton-basis scratch vectors, and a radius and counters reused across
// restarts. A Workspace is built once for a given vector shape and Krylov
// order and reused across many propagations; see Propagate for the
// ownership rules governing concurrent use.
type Workspace struct {
	mMax int

	basis    []maths.Vector[complex128]
	seed     maths.Vector[complex128]
	seedNext maths.Vector[complex128]

	leja []complex128
	coef []complex128

	radius   float64
	nA       int
	nLeja    int
	restarts int

	hess *krylov.Hessenberg

	rBuf     []complex128
	pBuf     []complex128
	rScratch []complex128

	history  []RestartSnapshot
	lastRitz []complex128
}

// NewWorkspace allocates a Workspace shaped like prototype with a maximum
// Krylov order of mMax. If mMax is at least len(prototype), it is clamped
// to len(prototype)-1: a Krylov dimension equal to the full vector space
// would be ill-posed, since the basis already spans it. For a
// one-dimensional prototype this clamp would floor mMax at 0, which
// leaves the Arnoldi loop unable to run even once; mMax is floored at 1
// instead so a single Arnoldi step can still run, immediately break down
// (a one-dimensional basis is trivially an invariant subspace), and let
// Propagate read the operator's eigenvalue straight off Hess[0][0].
func NewWorkspace(prototype maths.Vector[complex128], mMax int) *Workspace {
	n := prototype.Length()
	if mMax >= n {
		mMax = n - 1
	}
	if mMax < 1 {
		mMax = 1
	}

	basis := make([]maths.Vector[complex128], mMax+1)
	for i := range basis {
		basis[i] = maths.NewVector[complex128](n)
	}

	initial := 10*mMax + 1
	return &Workspace{
		mMax:     mMax,
		basis:    basis,
		seed:     maths.NewVector[complex128](n),
		seedNext: maths.NewVector[complex128](n),
		leja:     make([]complex128, initial),
		coef:     make([]complex128, initial),
		hess:     krylov.NewHessenberg(mMax + 1),
		rBuf:     make([]complex128, mMax+1),
		pBuf:     make([]complex128, mMax+1),
		rScratch: make([]complex128, mMax+1),
	}
}

// reset clears the per-call state before a fresh Propagate run, without
// releasing any backing storage.
func (ws *Workspace) reset() {
	for i := range ws.leja {
		ws.leja[i] = 0
	}
	for i := range ws.coef {
		ws.coef[i] = 0
	}
	ws.nA = 0
	ws.nLeja = 0
	ws.restarts = 0
	ws.radius = 0
	ws.history = ws.history[:0]
	ws.lastRitz = nil
}

// Restarts reports the number of restarts the most recent Propagate call
// performed.
func (ws *Workspace) Restarts() int { return ws.restarts }

// NA reports the number of Newton coefficients retained after the most
// recent Propagate call.
func (ws *Workspace) NA() int { return ws.nA }

// NLeja reports the number of Leja points retained after the most recent
// Propagate call.
func (ws *Workspace) NLeja() int { return ws.nLeja }

// Radius reports the Leja/Newton scaling radius chosen on the first
// restart of the most recent Propagate call.
func (ws *Workspace) Radius() float64 { return ws.radius }

// History returns the per-restart residual diagnostics recorded by the
// most recent Propagate call, for use by PlotConvergence or direct
// inspection.
func (ws *Workspace) History() []RestartSnapshot { return ws.history }

// LastRitz returns the Ritz values computed on the last restart iteration
// that actually ran the general Newton-polynomial machinery, for use by
// PlotRitzValues or direct inspection. It is nil if the most recent
// Propagate call took the invariant-subspace short-circuit and never
// computed a Ritz spectrum at all.
func (ws *Workspace) LastRitz() []complex128 { return ws.lastRitz }
