package propagator

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotConvergence renders the per-restart residual history recorded by the
// most recent Propagate call as a log-scale line+scatter plot, written as
// a PNG to path. It is a pure diagnostic: it never runs during Propagate
// itself and never influences its numerics, only useful for an operator
// inspecting why a propagation took the number of restarts it did.
func (ws *Workspace) PlotConvergence(path string) error {
	if len(ws.history) == 0 {
		return fmt.Errorf("propagator: PlotConvergence: workspace has no restart history")
	}

	p := plot.New()
	p.Title.Text = "propagation residual by restart"
	p.X.Label.Text = "restart index"
	p.Y.Label.Text = "log10(beta)"

	pts := make(plotter.XYs, len(ws.history))
	for i, snap := range ws.history {
		pts[i].X = float64(i)
		beta := snap.Beta
		if beta <= 0 {
			beta = 1e-300
		}
		pts[i].Y = math.Log10(beta)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// PlotRitzValues renders the supplied Ritz values as a scatter plot in the
// complex plane, written as a PNG to path. Useful for inspecting the
// spectral spread that drove the workspace's radius choice.
func (ws *Workspace) PlotRitzValues(path string, ritz []complex128) error {
	if len(ritz) == 0 {
		return fmt.Errorf("propagator: PlotRitzValues: no Ritz values supplied")
	}

	p := plot.New()
	p.Title.Text = "Ritz value spectrum"
	p.X.Label.Text = "real"
	p.Y.Label.Text = "imag"

	pts := make(plotter.XYs, len(ritz))
	for i, z := range ritz {
		pts[i].X = real(z)
		pts[i].Y = imag(z)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter, plotter.NewGrid())

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
