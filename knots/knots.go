package knots

import (
	"sort"

	"github.com/neopdf/neopdf-go/pdferr"
)

// FindIntervalIndex returns the index i such that axis[i] <= v <
// axis[i+1], using a binary search over the strictly increasing axis.
// If v equals the last knot, it returns len(axis)-2 so that the
// caller can always address [i, i+1]. It fails with an
// OutOfBoundsError if v lies outside [axis[0], axis[len(axis)-1]].
func FindIntervalIndex(axis []float64, v float64) (int, error) {
	n := len(axis)
	if v < axis[0] || v > axis[n-1] {
		return 0, &pdferr.OutOfBoundsError{Value: v, Min: axis[0], Max: axis[n-1]}
	}
	if v == axis[n-1] {
		return n - 2, nil
	}
	return segment(axis, v), nil
}

// FindBicubicInterval returns the index i, always satisfying 1 <= i <=
// len(axis)-3, such that [i-1, i, i+1, i+2] is addressable for a cubic
// stencil. It fails with an OutOfBoundsError outside the narrowed
// range [axis[1], axis[len(axis)-2]], and with a DegenerateGridError
// if axis has fewer than 4 knots.
func FindBicubicInterval(axis []float64, v float64) (int, error) {
	n := len(axis)
	if n < 4 {
		return 0, &pdferr.DegenerateGridError{Axis: "bicubic", Index: n}
	}
	lo, hi := axis[1], axis[n-2]
	if v < lo || v > hi {
		return 0, &pdferr.OutOfBoundsError{Value: v, Min: lo, Max: hi}
	}
	i := segment(axis, v)
	if v == axis[n-2] {
		i = n - 2
	}
	if i < 1 {
		i = 1
	}
	if i > n-3 {
		i = n - 3
	}
	return i, nil
}

// segment returns the unique i with axis[i] <= v < axis[i+1], assuming
// v is within [axis[0], axis[len(axis)-1]) and len(axis) >= 2.
func segment(axis []float64, v float64) int {
	return sort.Search(len(axis), func(i int) bool { return axis[i] > v }) - 1
}

// Hermite evaluates the cubic Hermite basis on the unit interval t in
// [0, 1], given the value and derivative at each end.
func Hermite(t, vLo, dLo, vHi, dHi float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return (2*t3-3*t2+1)*vLo + (t3-2*t2+t)*dLo + (-2*t3+3*t2)*vHi + (t3-t2)*dHi
}

// Slope returns the finite-difference slope (y1-y0)/(x1-x0). It is the
// building block for the forward/backward/central derivative estimates
// the cubic and tricubic strategies compute at interior and edge
// knots.
func Slope(x0, y0, x1, y1 float64) float64 {
	return (y1 - y0) / (x1 - x0)
}
