package propagator

import "context"

// config holds Propagate's optional parameters: the scalar function f, the
// breakdown and convergence tolerances, the restart cap, and a cancellation
// token. Every one of these has a sensible default and callers rarely need
// to touch more than one at a time, so they are collected as functional
// options rather than positional constructor parameters.
type config struct {
	f           Func
	normMin     float64
	relErr      float64
	maxRestarts int
	ctx         context.Context
}

func defaultConfig() config {
	return config{
		f:           DefaultFunc,
		normMin:     1e-14,
		relErr:      1e-12,
		maxRestarts: 50,
		ctx:         context.Background(),
	}
}

// Option configures a single call to Propagate.
type Option func(*config)

// WithFunc overrides the scalar function f; the default is DefaultFunc.
func WithFunc(f Func) Option {
	return func(c *config) { c.f = f }
}

// WithNormMin overrides the Arnoldi breakdown threshold; the default is
// 1e-14.
func WithNormMin(v float64) Option {
	return func(c *config) { c.normMin = v }
}

// WithRelErr overrides the convergence relative-error tolerance; the
// default is 1e-12.
func WithRelErr(v float64) Option {
	return func(c *config) { c.relErr = v }
}

// WithMaxRestarts overrides the restart cap; the default is 50.
func WithMaxRestarts(n int) Option {
	return func(c *config) { c.maxRestarts = n }
}

// WithContext supplies a cancellation token observed between restart
// iterations only, never mid-Arnoldi. The default is context.Background(),
// which never cancels.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}
