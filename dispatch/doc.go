// Package dispatch selects the active kinematic axes of a SubGrid and
// builds the interpolation strategy that operates on them.
//
// A SubGrid's nucleon, αₛ and kT axes may each have length 1 ("not
// varying" for that tile) or more than 1. The combination of which of
// these three axes vary determines the InterpolationConfig, which in
// turn fixes both the shape of the active-axes slice handed to an
// interp.Strategy and which concrete Strategy implementation applies.
package dispatch // import "github.com/neopdf/neopdf-go/dispatch"
