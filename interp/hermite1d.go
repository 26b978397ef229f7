package interp

import "github.com/neopdf/neopdf-go/knots"

// cubicAt1D evaluates a 1-D cubic Hermite interpolant along axis
// (already in the chosen coordinate space, e.g. log x), given a
// value-at-knot accessor value(k), at cell i (0 <= i <= len(axis)-2)
// and fractional position u in [0, 1] across that cell.
//
// Per-knot derivatives are estimated with central differences at
// interior knots and one-sided differences at the array edges, the
// same estimator gonum's AkimaSpline and FritschButland build their
// slopes from (interp/cubic.go), generalised here to a value accessor
// so it composes across dimensions (see LogTricubic).
func cubicAt1D(axis []float64, value func(k int) float64, i int, u float64) float64 {
	n := len(axis)
	deriv := func(k int) float64 {
		switch {
		case k == 0:
			return knots.Slope(axis[0], value(0), axis[1], value(1))
		case k == n-1:
			return knots.Slope(axis[n-2], value(n-2), axis[n-1], value(n-1))
		default:
			return knots.Slope(axis[k-1], value(k-1), axis[k+1], value(k+1))
		}
	}
	dx := axis[i+1] - axis[i]
	vLo, vHi := value(i), value(i+1)
	dLo, dHi := deriv(i)*dx, deriv(i+1)*dx
	return knots.Hermite(u, vLo, dLo, vHi, dHi)
}

// hermiteCoeffs converts a cubic Hermite interpolant on the unit
// interval (value/derivative pairs at each end, with the derivative
// already scaled to the unit parameter) into power-basis coefficients
// (a, b, c, d) such that the interpolated value is
// a*u^3 + b*u^2 + c*u + d. This is the precomputation LogBicubic
// stores per cell, the same trade-off gonum's PiecewiseCubic.coeffs
// makes (interp/cubic.go), generalised from raw-dx to unit-u spacing.
func hermiteCoeffs(vLo, dLo, vHi, dHi float64) (a, b, c, d float64) {
	a = 2*vLo - 2*vHi + dLo + dHi
	b = -3*vLo + 3*vHi - 2*dLo - dHi
	c = dLo
	d = vLo
	return a, b, c, d
}

// evalCoeffs evaluates a*u^3 + b*u^2 + c*u + d using Horner's method.
func evalCoeffs(a, b, c, d, u float64) float64 {
	return ((a*u+b)*u+c)*u + d
}
