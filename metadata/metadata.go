package metadata

import (
	"github.com/neopdf/neopdf-go/grid"
)

// QAlphaKnot is one (Q, αₛ) pair of the shared αₛ(Q) table. Note that
// the knot coordinate is Q, not Q², matching the convention LHAPDF
// uses for this particular table even though every other αₛ axis in
// this package is Q².
type QAlphaKnot struct {
	Q, Alphas float64
}

// MetaData is the descriptive record shared by every member of one
// archive: set identity, the kinematic extent tabulated across all
// subgrids and members, the flavor list, the αₛ(Q) reference table,
// and the physical constants and provenance tags LHAPDF-style sets
// carry alongside the grid itself.
type MetaData struct {
	SetName    string
	SetIndex   int
	NumMembers int

	NucleonRange grid.ParamRange
	AlphaRange   grid.ParamRange
	KtRange      grid.ParamRange
	XRange       grid.ParamRange
	Q2Range      grid.ParamRange

	Flavors []int

	AlphaSKnots []QAlphaKnot

	InterpolatorTag string
	SetType         string
	ParticleID      int

	QCDOrder int

	QuarkMasses []float64
	BosonMasses []float64
	FlavorScheme string

	CodeVersion string
	GitVersion  string
}
