package propagator

import (
	"fmt"
	"math"
	"math/cmplx"

	"propagator/krylov"
	"propagator/leja"
	"propagator/maths"
)

// Propagate overwrites psi with f(H*dt)*psi using a restarted-Arnoldi
// Newton-polynomial expansion on adaptively chosen Leja interpolation
// nodes. ws must be shaped like psi (same length) and is exclusively owned
// by this call for its duration; reusing a Workspace across concurrent
// calls is undefined behavior, matching the ownership contract of the
// Krylov basis it holds.
//
// dt must be nonzero. On success, diagnostics (restarts, n_leja, n_a,
// radius, per-restart residual history) remain available on ws for
// inspection.
func Propagate(psi maths.Vector[complex128], h Operator, dt complex128, ws *Workspace, opts ...Option) error {
	if dt == 0 {
		return ErrZeroStep
	}
	if psi.Length() != ws.seed.Length() {
		panic(fmt.Errorf("propagator: Propagate: psi does not match workspace shape: %w", ErrDimensionMismatch))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ws.reset()

	beta := psi.Norm()
	psi.Copy(ws.seed)
	if beta > 0 {
		ws.seed.Scale(complex(1/beta, 0))
	}

	s := 0
	for {
		if beta <= cfg.normMin {
			break
		}

		m, brokeDown := krylov.Arnoldi(ws.hess, ws.basis, ws.mMax, ws.seed, h, dt, true, cfg.normMin)

		if s == 0 && m == 1 && brokeDown {
			lambda := ws.hess.Get(0, 0)
			psi.Scale(cfg.f(lambda))
			ws.restarts = restartCount(s)
			return nil
		}

		ritz := krylov.Spectrum(ws.hess, m, true)
		ws.lastRitz = append([]complex128(nil), ritz...)

		if s == 0 {
			ws.radius = 1.2 * maxAbs(ritz)
		}

		ns := ws.nLeja
		_, newLejaLen := leja.Extend(&ws.leja, ws.nLeja, ritz, m)
		ws.nLeja = newLejaLen

		newNA, err := leja.ExtendCoefficients(&ws.coef, ws.leja, ws.nA, ws.nLeja, ws.radius, cfg.f)
		if err != nil {
			ws.restarts = restartCount(s)
			return err
		}
		ws.nA = newNA

		r := complex(ws.radius, 0)
		R := ws.rBuf[:m+1]
		scratch := ws.rScratch[:m+1]
		P := ws.pBuf[:m+1]
		for i := range R {
			R[i] = 0
			P[i] = 0
		}
		R[0] = complex(beta, 0)
		P[0] = ws.coef[ns] * complex(beta, 0)

		for k := 0; k <= m-2; k++ {
			applyShiftedHessenberg(ws.hess, m, ws.leja[ns+k], r, R, scratch)
			coeff := ws.coef[ns+k+1]
			for i := 0; i <= m; i++ {
				P[i] += coeff * R[i]
			}
		}

		if s == 0 {
			psi.Zero()
		}
		for i := 0; i < m; i++ {
			psi.AXPY(P[i], ws.basis[i])
		}

		applyShiftedHessenberg(ws.hess, m, ws.leja[ns+m-1], r, R, scratch)
		betaNew := complexVectorNorm(R)

		if betaNew > cfg.normMin {
			invBetaNew := complex(1/betaNew, 0)
			for i := range R {
				R[i] *= invBetaNew
			}
			ws.seedNext.Zero()
			ws.seedNext.AXPY(R[0], ws.seed)
			for i := 1; i <= m; i++ {
				ws.seedNext.AXPY(R[i], ws.basis[i])
			}
			if nrm := ws.seedNext.Norm(); nrm > 0 {
				ws.seedNext.Scale(complex(1/nrm, 0))
			}
			ws.seedNext.Copy(ws.seed)
			beta = betaNew
		} else {
			beta = 0
		}

		ws.history = append(ws.history, RestartSnapshot{Beta: beta, NA: ws.nA, NLeja: ws.nLeja})

		lastCoef := cmplx.Abs(ws.coef[ws.nA-1])
		if beta*lastCoef/(1+psi.Norm()) < cfg.relErr {
			ws.restarts = restartCount(s)
			return nil
		}

		select {
		case <-cfg.ctx.Done():
			ws.restarts = restartCount(s)
			return cfg.ctx.Err()
		default:
		}

		s++
		if s > cfg.maxRestarts {
			ws.restarts = restartCount(s)
			return ErrNonConvergence
		}
	}

	ws.restarts = restartCount(s)
	return nil
}

// restartCount translates the loop's internal pass index s (0 for the
// original attempt, incremented after each pass that does not converge)
// into the externally reported restart count max(0, s-1). A call that
// returns from pass s=1 therefore reports 0, the same as one that returns
// from the original pass.
func restartCount(s int) int {
	if s == 0 {
		return 0
	}
	return s - 1
}

// applyShiftedHessenberg computes R <- (Hext - lambda*I) * R / r in place,
// where Hext is the (m+1)x(m+1) extended Hessenberg block (its one extra
// column beyond the square m x m block is implicitly zero, since Arnoldi
// never writes it). scratch must have the same length as R.
func applyShiftedHessenberg(hess *krylov.Hessenberg, m int, lambda, r complex128, R, scratch []complex128) {
	for i := 0; i <= m; i++ {
		var sum complex128
		for j := 0; j <= m; j++ {
			sum += hess.Get(i, j) * R[j]
		}
		sum -= lambda * R[i]
		scratch[i] = sum / r
	}
	copy(R, scratch)
}

func complexVectorNorm(v []complex128) float64 {
	var sumSq float64
	for _, z := range v {
		a := cmplx.Abs(z)
		sumSq += a * a
	}
	return math.Sqrt(sumSq)
}

func maxAbs(zs []complex128) float64 {
	best := 0.0
	for _, z := range zs {
		if a := cmplx.Abs(z); a > best {
			best = a
		}
	}
	return best
}
