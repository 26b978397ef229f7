package gridpdf

import "github.com/neopdf/neopdf-go/grid"

// AxisRanges is the axis-wise kinematic extent of a GridPDF's member,
// taken as the union of every subgrid's cached ParamRange.
type AxisRanges struct {
	Nucleons, Alphas, Kt, X, Q2 grid.ParamRange
}

func union(a, b grid.ParamRange) grid.ParamRange {
	r := a
	if b.Min < r.Min {
		r.Min = b.Min
	}
	if b.Max > r.Max {
		r.Max = b.Max
	}
	return r
}
