// Package interp implements the interpolation strategies that
// evaluate x·f(flavor; x, Q², …) and αₛ(Q²) over one (subgrid, flavor)
// slice of tabulated knots: LogBilinear and LogBicubic (2-D, over
// log x and log Q²), LogTricubic (3-D, adding one log-scaled axis),
// NDLinear (4-D or 5-D multilinear, no log transform), AlphasCubic
// (1-D cubic in log Q², with formula-based extrapolation below the
// lowest knot and clamping above the highest) and AlphasAnalytic (the
// leading-order running formula for sets with no tabulated αₛ(Q)
// curve).
//
// Every strategy implements Strategy: Predict takes the active-axes
// point in the strategy's own coordinate order and returns either the
// interpolated value or one of the error kinds in package pdferr.
// Strategies are immutable after construction and safe for concurrent
// use, the same contract gonum's interp.Predictor gives its 1-D
// interpolators.
package interp // import "github.com/neopdf/neopdf-go/interp"
