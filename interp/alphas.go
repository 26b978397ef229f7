package interp

import (
	"math"

	"github.com/neopdf/neopdf-go/knots"
	"github.com/neopdf/neopdf-go/pdferr"
)

// AlphasCubic is the LHAPDF-compatible strong-coupling strategy: a
// Hermite cubic in log Q² inside the tabulated range, a power-law
// extrapolation below the lowest knot, and a clamp to the last value
// above the highest knot.
//
// Adjacent knots with equal Q² are permitted (heavy-quark flavour
// thresholds duplicate the Q² knot so that αₛ can be discontinuous
// there); derivative estimates skip these zero-width intervals by
// walking to the nearest knot with a distinct Q².
type AlphasCubic struct {
	q2     []float64
	logQ2  []float64
	alphas []float64
	slope  float64 // low-Q² extrapolation exponent g
}

// NewAlphasCubic builds an AlphasCubic from parallel (Q², αₛ) knot
// arrays. Q² must be non-decreasing and strictly positive; len(q2)
// must equal len(alphas) and be at least 2, with at least one pair of
// distinct Q² values (so the extrapolation slope is defined).
func NewAlphasCubic(q2, alphas []float64) (*AlphasCubic, error) {
	if len(q2) != len(alphas) {
		return nil, &pdferr.InvalidInputError{Reason: "alphas: q2 and alphas slices have different lengths"}
	}
	if len(q2) < 2 {
		return nil, &pdferr.DegenerateGridError{Axis: "alphas_q2", Index: len(q2)}
	}
	logQ2 := make([]float64, len(q2))
	for i, v := range q2 {
		if v <= 0 {
			return nil, &pdferr.InvalidInputError{Reason: "alphas: q2 knot must be positive", Value: v}
		}
		if i > 0 && v < q2[i-1] {
			return nil, &pdferr.DegenerateGridError{Axis: "alphas_q2", Index: i}
		}
		logQ2[i] = math.Log(v)
	}
	k := 1
	for k < len(q2) && q2[k] == q2[0] {
		k++
	}
	if k == len(q2) {
		return nil, &pdferr.DegenerateGridError{Axis: "alphas_q2", Index: 0}
	}
	g := math.Log10(alphas[k]/alphas[0]) / math.Log10(q2[k]/q2[0])
	return &AlphasCubic{q2: append([]float64(nil), q2...), logQ2: logQ2, alphas: append([]float64(nil), alphas...), slope: g}, nil
}

func (ac *AlphasCubic) Arity() int { return 1 }

// Predict returns αₛ(Q²) at point = [Q²]. Q² must be non-negative; 0
// is accepted only as the boundary of the low-Q² extrapolation.
func (ac *AlphasCubic) Predict(point []float64) (float64, error) {
	if len(point) != 1 {
		return 0, &pdferr.InvalidInputError{Reason: "AlphasCubic expects a 1-element point"}
	}
	q2 := point[0]
	if math.IsNaN(q2) {
		return 0, &pdferr.InvalidInputError{Reason: "q2 is NaN", Value: q2}
	}
	if q2 < 0 {
		return 0, &pdferr.InvalidInputError{Reason: "q2 must be non-negative", Value: q2}
	}
	switch {
	case q2 < ac.q2[0]:
		return ac.extrapolateLow(q2), nil
	case q2 > ac.q2[len(ac.q2)-1]:
		return ac.alphas[len(ac.alphas)-1], nil
	default:
		return ac.interpolate(q2), nil
	}
}

// extrapolateLow implements αₛ(Q²) = αₛ(Q²₀)·(Q²/Q²₀)^g for Q² below
// the lowest knot, including the Q² = 0 boundary.
func (ac *AlphasCubic) extrapolateLow(q2 float64) float64 {
	if q2 == 0 {
		if ac.slope > 0 {
			return 0
		}
		return math.Inf(1)
	}
	return ac.alphas[0] * math.Pow(q2/ac.q2[0], ac.slope)
}

func (ac *AlphasCubic) interpolate(q2 float64) float64 {
	lnq2 := math.Log(q2)
	i, err := knots.FindIntervalIndex(ac.logQ2, lnq2)
	if err != nil {
		// q2 is within [q2[0], q2[last]] by construction, so this
		// cannot happen; fall back to clamping defensively.
		return ac.alphas[len(ac.alphas)-1]
	}
	dx := ac.logQ2[i+1] - ac.logQ2[i]
	if dx == 0 {
		return ac.alphas[i+1]
	}
	vLo, vHi := ac.alphas[i], ac.alphas[i+1]
	dLo := ac.derivative(i) * dx
	dHi := ac.derivative(i+1) * dx
	t := (lnq2 - ac.logQ2[i]) / dx
	return knots.Hermite(t, vLo, dLo, vHi, dHi)
}

// derivative estimates d(alphas)/d(logQ2) at knot i, using central
// differences against the nearest knots with distinct Q² and one-sided
// differences at the array edges.
func (ac *AlphasCubic) derivative(i int) float64 {
	n := len(ac.logQ2)
	switch {
	case i == 0:
		j := ac.nextDistinct(0)
		return knots.Slope(ac.logQ2[0], ac.alphas[0], ac.logQ2[j], ac.alphas[j])
	case i == n-1:
		j := ac.prevDistinct(n - 1)
		return knots.Slope(ac.logQ2[j], ac.alphas[j], ac.logQ2[i], ac.alphas[i])
	default:
		jl := ac.prevDistinct(i)
		jh := ac.nextDistinct(i)
		return knots.Slope(ac.logQ2[jl], ac.alphas[jl], ac.logQ2[jh], ac.alphas[jh])
	}
}

func (ac *AlphasCubic) nextDistinct(i int) int {
	j := i
	for j < len(ac.logQ2)-1 && ac.logQ2[j+1] == ac.logQ2[i] {
		j++
	}
	if j < len(ac.logQ2)-1 {
		return j + 1
	}
	return j
}

func (ac *AlphasCubic) prevDistinct(i int) int {
	j := i
	for j > 0 && ac.logQ2[j-1] == ac.logQ2[i] {
		j--
	}
	if j > 0 {
		return j - 1
	}
	return j
}
