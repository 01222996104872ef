package propagator

import (
	"context"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"propagator/maths"
)

type denseOperator struct {
	n int
	a []complex128
}

func (d *denseOperator) Apply(x, y maths.Vector[complex128]) {
	for i := 0; i < d.n; i++ {
		var sum complex128
		for j := 0; j < d.n; j++ {
			sum += d.a[i*d.n+j] * x.Get(j)
		}
		y.Set(i, sum)
	}
}

func diagonalOperator(diag []complex128) *denseOperator {
	n := len(diag)
	a := make([]complex128, n*n)
	for i, d := range diag {
		a[i*n+i] = d
	}
	return &denseOperator{n: n, a: a}
}

func randomHermitianOperator(n int, rng *rand.Rand) *denseOperator {
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			if i == j {
				v = complex(real(v), 0)
			}
			a[i*n+j] = v
			a[j*n+i] = cmplx.Conj(v)
		}
	}
	return &denseOperator{n: n, a: a}
}

func vecOf(data ...complex128) maths.Vector[complex128] {
	return maths.NewVectorWithData(append([]complex128(nil), data...))
}

// Scenario 1: N=1, H=[[h]], zero restarts, m=1 short-circuit path.
func TestPropagateScalarOperator(t *testing.T) {
	h := diagonalOperator([]complex128{2 + 1i})
	psi := vecOf(1)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(0.5, 0), ws)
	require.NoError(t, err)
	require.Equal(t, 0, ws.Restarts())

	want := cmplx.Exp(complex(0, -1) * (2 + 1i) * 0.5)
	require.Less(t, cmplx.Abs(psi.Get(0)-want), 1e-10)
}

// Scenario 2: N=2 diagonal H, Psi0 = (1/sqrt2)*[1,1], dt=1.
func TestPropagateDiagonalTwoLevel(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	s := complex(1/math.Sqrt2, 0)
	psi := vecOf(s, s)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(1, 0), ws)
	require.NoError(t, err)

	want0 := s * cmplx.Exp(complex(0, -1))
	want1 := s * cmplx.Exp(complex(0, -2))
	require.Less(t, cmplx.Abs(psi.Get(0)-want0), 1e-12)
	require.Less(t, cmplx.Abs(psi.Get(1)-want1), 1e-12)
}

// Scenario 3: exact eigenvector seed, m=1 breakdown, zero restarts.
func TestPropagateEigenvectorBreakdown(t *testing.T) {
	h := diagonalOperator([]complex128{3, 7})
	psi := vecOf(1, 0)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(1, 0), ws)
	require.NoError(t, err)
	require.Equal(t, 0, ws.Restarts())

	want0 := cmplx.Exp(complex(0, -1) * 3)
	require.Less(t, cmplx.Abs(psi.Get(0)-want0), 1e-12)
	require.Less(t, cmplx.Abs(psi.Get(1)), 1e-12)
}

// Scenario 4: large random Hermitian H, unit-norm preservation and
// agreement with the dense exponential.
func TestPropagateLargeHermitianAgreesWithDenseExponential(t *testing.T) {
	n := 60
	rng := rand.New(rand.NewSource(42))
	h := randomHermitianOperator(n, rng)

	psi0 := make([]complex128, n)
	var norm2 float64
	for i := range psi0 {
		v := complex(rng.NormFloat64(), rng.NormFloat64())
		psi0[i] = v
		norm2 += real(v)*real(v) + imag(v)*imag(v)
	}
	scale := complex(1/cmplxSqrtFloat(norm2), 0)
	for i := range psi0 {
		psi0[i] *= scale
	}

	psi := maths.NewVectorWithData(append([]complex128(nil), psi0...))
	ws := NewWorkspace(psi, 20)

	dt := complex(0.5, 0)
	err := Propagate(psi, h, dt, ws)
	require.NoError(t, err)
	require.InDelta(t, 1.0, psi.Norm(), 1e-8)

	dense := denseExpApply(h.a, n, dt, psi0)
	var maxDiff float64
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(psi.Get(i) - dense[i]); d > maxDiff {
			maxDiff = d
		}
	}
	require.Less(t, maxDiff, 1e-6)
}

func cmplxSqrtFloat(x float64) float64 {
	return math.Sqrt(x)
}

// denseExpApply computes exp(-i*H*dt)*psi0 via truncated Taylor series,
// adequate reference accuracy for the small matrices used in these tests.
func denseExpApply(a []complex128, n int, dt complex128, psi0 []complex128) []complex128 {
	term := append([]complex128(nil), psi0...)
	result := append([]complex128(nil), psi0...)
	for k := 1; k <= 40; k++ {
		next := make([]complex128, n)
		for i := 0; i < n; i++ {
			var sum complex128
			for j := 0; j < n; j++ {
				sum += a[i*n+j] * term[j]
			}
			next[i] = complex(0, -1) * dt * sum / complex(float64(k), 0)
		}
		term = next
		for i := 0; i < n; i++ {
			result[i] += term[i]
		}
	}
	return result
}

// Scenario 5: dt=0 must fail the precondition check.
func TestPropagateZeroStepFails(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	psi := vecOf(1, 0)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, 0, ws)
	require.ErrorIs(t, err, ErrZeroStep)
}

// Scenario 6: workspace constructed with m_max = N is clamped to N-1.
func TestNewWorkspaceClampsMMaxToLengthMinusOne(t *testing.T) {
	psi := vecOf(1, 0, 0)
	ws := NewWorkspace(psi, 3)
	require.Equal(t, 2, ws.mMax)

	h := diagonalOperator([]complex128{1, 2, 3})
	err := Propagate(psi, h, complex(1, 0), ws)
	require.NoError(t, err)
}

// WithFunc overrides f; using the identity function on a scalar operator
// turns the short-circuit path into a plain scaling by dt*h.
func TestPropagateWithFuncOverridesDefault(t *testing.T) {
	h := diagonalOperator([]complex128{2 + 1i})
	psi := vecOf(1)
	ws := NewWorkspace(psi, 1)

	identity := func(z complex128) complex128 { return z }
	err := Propagate(psi, h, complex(0.5, 0), ws, WithFunc(identity))
	require.NoError(t, err)

	want := complex(0.5, 0) * (2 + 1i)
	require.Less(t, cmplx.Abs(psi.Get(0)-want), 1e-12)
}

// WithNormMin raises the breakdown/skip threshold above the input norm, so
// Propagate treats psi as already negligible and leaves it untouched.
func TestPropagateWithNormMinSkipsNegligibleInput(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	psi := vecOf(1, 0)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(1, 0), ws, WithNormMin(10))
	require.NoError(t, err)
	require.Equal(t, complex128(1), psi.Get(0))
	require.Equal(t, complex128(0), psi.Get(1))
}

// WithMaxRestarts(0) forbids any restart beyond the original pass; a
// two-level superposition under a tight default relErr needs more than one
// pass to converge, so it must fail with ErrNonConvergence.
func TestPropagateWithMaxRestartsZeroFailsForMultiRestartProblem(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	s := complex(1/math.Sqrt2, 0)
	psi := vecOf(s, s)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(1, 0), ws, WithMaxRestarts(0))
	require.ErrorIs(t, err, ErrNonConvergence)
}

// WithRelErr loosens the convergence test enough that the same problem that
// fails with zero restarts above now succeeds in the original pass alone.
func TestPropagateWithRelErrLooseToleranceConvergesImmediately(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	s := complex(1/math.Sqrt2, 0)
	psi := vecOf(s, s)
	ws := NewWorkspace(psi, 1)

	err := Propagate(psi, h, complex(1, 0), ws, WithMaxRestarts(0), WithRelErr(10))
	require.NoError(t, err)
	require.Equal(t, 0, ws.Restarts())
}

// WithContext supplies a token observed between restarts; a context
// canceled before the call is picked up as soon as the first restart's
// convergence test fails, well before max_restarts is exhausted.
func TestPropagateWithContextCancellation(t *testing.T) {
	h := diagonalOperator([]complex128{1, 2})
	s := complex(1/math.Sqrt2, 0)
	psi := vecOf(s, s)
	ws := NewWorkspace(psi, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Propagate(psi, h, complex(1, 0), ws, WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// Composition law: propagating by dt then -dt restores the original state.
func TestPropagateCompositionRoundTrip(t *testing.T) {
	n := 15
	rng := rand.New(rand.NewSource(7))
	h := randomHermitianOperator(n, rng)

	psi0 := make([]complex128, n)
	var norm2 float64
	for i := range psi0 {
		v := complex(rng.NormFloat64(), rng.NormFloat64())
		psi0[i] = v
		norm2 += real(v)*real(v) + imag(v)*imag(v)
	}
	scale := complex(1/cmplxSqrtFloat(norm2), 0)
	for i := range psi0 {
		psi0[i] *= scale
	}

	psi := maths.NewVectorWithData(append([]complex128(nil), psi0...))
	ws := NewWorkspace(psi, 10)

	dt := complex(0.3, 0)
	require.NoError(t, Propagate(psi, h, dt, ws))
	require.NoError(t, Propagate(psi, h, -dt, ws))

	for i := 0; i < n; i++ {
		require.Less(t, cmplx.Abs(psi.Get(i)-psi0[i]), 1e-9)
	}
}

// Linearity law: propagating a linear combination equals the combination
// of the individually propagated states.
func TestPropagateLinearity(t *testing.T) {
	n := 12
	rng := rand.New(rand.NewSource(9))
	h := randomHermitianOperator(n, rng)
	dt := complex(0.2, 0)

	psi1raw := randomUnitVector(n, rng)
	psi2raw := randomUnitVector(n, rng)
	alpha := complex(0.6, 0.2)
	beta := complex(-0.3, 0.5)

	psi1 := maths.NewVectorWithData(append([]complex128(nil), psi1raw...))
	ws1 := NewWorkspace(psi1, 10)
	require.NoError(t, Propagate(psi1, h, dt, ws1))

	psi2 := maths.NewVectorWithData(append([]complex128(nil), psi2raw...))
	ws2 := NewWorkspace(psi2, 10)
	require.NoError(t, Propagate(psi2, h, dt, ws2))

	combo := make([]complex128, n)
	for i := range combo {
		combo[i] = alpha*psi1raw[i] + beta*psi2raw[i]
	}
	psiCombo := maths.NewVectorWithData(combo)
	ws3 := NewWorkspace(psiCombo, 10)
	require.NoError(t, Propagate(psiCombo, h, dt, ws3))

	for i := 0; i < n; i++ {
		want := alpha*psi1.Get(i) + beta*psi2.Get(i)
		require.Less(t, cmplx.Abs(psiCombo.Get(i)-want), 1e-8)
	}
}

func randomUnitVector(n int, rng *rand.Rand) []complex128 {
	v := make([]complex128, n)
	var norm2 float64
	for i := range v {
		z := complex(rng.NormFloat64(), rng.NormFloat64())
		v[i] = z
		norm2 += real(z)*real(z) + imag(z)*imag(z)
	}
	scale := complex(1/cmplxSqrtFloat(norm2), 0)
	for i := range v {
		v[i] *= scale
	}
	return v
}
