package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"propagator"
	"propagator/maths"
)

type hermitianOperator struct {
	n int
	a []complex128
}

func (h *hermitianOperator) Apply(x, y maths.Vector[complex128]) {
	for i := 0; i < h.n; i++ {
		var sum complex128
		for j := 0; j < h.n; j++ {
			sum += h.a[i*h.n+j] * x.Get(j)
		}
		y.Set(i, sum)
	}
}

func randomHermitian(n int, rng *rand.Rand) *hermitianOperator {
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			if i == j {
				v = complex(real(v), 0)
			}
			a[i*n+j] = v
			a[j*n+i] = complexConj(v)
		}
	}
	return &hermitianOperator{n: n, a: a}
}

func complexConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

func main() {
	n := flag.Int("n", 1000, "operator dimension")
	mMax := flag.Int("mmax", 20, "maximum Krylov order")
	dt := flag.Float64("dt", 0.5, "propagation step")
	theta := flag.Float64("theta", 1.0, "propagator phase factor: f(z) = exp(-i*theta*z)")
	seed := flag.Int64("seed", 1, "random seed")
	plotPrefix := flag.String("plots", "", "if set, write <prefix>-convergence.png and <prefix>-ritz.png")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	h := randomHermitian(*n, rng)

	psi0 := make([]complex128, *n)
	var norm float64
	for i := range psi0 {
		v := complex(rng.NormFloat64(), rng.NormFloat64())
		psi0[i] = v
		norm += real(v)*real(v) + imag(v)*imag(v)
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range psi0 {
		psi0[i] *= scale
	}
	psi := maths.NewVectorWithData(psi0)

	phase := complex(0, -*theta)
	f := func(z complex128) complex128 { return cmplx.Exp(phase * z) }

	ws := propagator.NewWorkspace(psi, *mMax)
	if err := propagator.Propagate(psi, h, complex(*dt, 0), ws, propagator.WithFunc(f)); err != nil {
		fmt.Println("propagate:", err)
		return
	}

	fmt.Printf("||psi_out|| = %.12f\n", psi.Norm())
	fmt.Printf("restarts=%d n_leja=%d n_a=%d radius=%.6f\n", ws.Restarts(), ws.NLeja(), ws.NA(), ws.Radius())

	if *plotPrefix != "" {
		if err := ws.PlotConvergence(*plotPrefix + "-convergence.png"); err != nil {
			fmt.Println("plot convergence:", err)
		}
		if ritz := ws.LastRitz(); len(ritz) > 0 {
			if err := ws.PlotRitzValues(*plotPrefix+"-ritz.png", ritz); err != nil {
				fmt.Println("plot ritz values:", err)
			}
		}
	}
}

