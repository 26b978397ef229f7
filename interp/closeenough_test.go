package interp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// closeEnough reports whether a and b agree to within a tight
// absolute-or-relative tolerance, tolerating the NaN-vs-NaN case the
// way gonum's own interpolation tests do.
func closeEnough(a, b float64) bool {
	return (math.IsNaN(a) && math.IsNaN(b)) || floats.EqualWithinAbsOrRel(a, b, 1e-9, 1e-9)
}
