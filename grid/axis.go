package grid

import (
	"math"

	"github.com/neopdf/neopdf-go/pdferr"
)

// Axis is an ordered sequence of strictly monotonically increasing
// knots along one coordinate of a SubGrid.
type Axis []float64

// ParamRange is the inclusive [Min, Max] extent of an axis, cached by
// SubGrid for fast membership tests.
type ParamRange struct {
	Min, Max float64
}

// Range returns the inclusive extent of the axis. It panics if the
// axis is empty; callers must validate with Validate first.
func (a Axis) Range() ParamRange {
	return ParamRange{Min: a[0], Max: a[len(a)-1]}
}

// Contains reports whether v lies within the axis's inclusive range.
func (a Axis) Contains(v float64) bool {
	return v >= a[0] && v <= a[len(a)-1]
}

// Validate checks that a is strictly monotonically increasing and, if
// logScale is true, that every knot is strictly positive. name is used
// to identify the axis in returned errors.
func (a Axis) Validate(name string, logScale bool) error {
	if len(a) == 0 {
		return &pdferr.DegenerateGridError{Axis: name, Index: 0}
	}
	for i, v := range a {
		if math.IsNaN(v) {
			return &pdferr.InvalidInputError{Reason: name + ": NaN knot", Value: v}
		}
		if logScale && v <= 0 {
			return &pdferr.InvalidInputError{Reason: name + ": non-positive knot on log-scaled axis", Value: v}
		}
		if i > 0 && a[i] <= a[i-1] {
			return &pdferr.DegenerateGridError{Axis: name, Index: i}
		}
	}
	return nil
}
