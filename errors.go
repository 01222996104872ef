package propagator

import (
	"errors"

	"propagator/leja"
	"propagator/maths"
)

// Sentinel errors returned by Propagate. Contract violations on buffer
// sizes panic instead of being returned, but still panic with
// ErrDimensionMismatch rather than a bare string so a caller that recovers
// can still match the cause with errors.Is. Concurrent reuse of a
// Workspace is not detected.
var (
	// ErrZeroStep is returned when dt == 0; the propagator's step
	// precondition requires a nonzero complex step.
	ErrZeroStep = errors.New("propagator: dt must be nonzero")

	// ErrNonConvergence is returned when the restart loop exceeds
	// max_restarts without satisfying the relative-error test. Ψ is left in
	// an undefined state; callers needing rollback must copy it beforehand.
	ErrNonConvergence = errors.New("propagator: restart loop did not converge within max_restarts")
)

// ErrDimensionMismatch is re-exported from the maths package so callers
// recovering from a panicked vector-algebra call can match it with
// errors.Is without importing propagator/maths directly.
var ErrDimensionMismatch = maths.ErrDimensionMismatch

// ErrDividedDifferenceBreakdown is re-exported from the leja package so
// callers depending only on this package can still match it with errors.Is
// without importing propagator/leja directly.
var ErrDividedDifferenceBreakdown = leja.ErrDividedDifferenceBreakdown
