package dispatch

import "github.com/neopdf/neopdf-go/grid"

// InterpolationConfig names the active-axes combination of a SubGrid,
// determined entirely by which of its nucleon, αₛ and kT axes have
// more than one knot.
type InterpolationConfig int

const (
	// TwoD: only x and Q² vary. Evaluated with LogBicubic (falling
	// back to LogBilinear when an axis is too short for the cubic
	// stencil).
	TwoD InterpolationConfig = iota
	// ThreeDNucleons: nucleon number additionally varies.
	ThreeDNucleons
	// ThreeDAlphas: αₛ additionally varies.
	ThreeDAlphas
	// ThreeDKt: kT additionally varies.
	ThreeDKt
	// FourDNucleonsAlphas: both nucleon number and αₛ vary.
	FourDNucleonsAlphas
	// FourDNucleonsKt: both nucleon number and kT vary.
	FourDNucleonsKt
	// FourDAlphasKt: both αₛ and kT vary.
	FourDAlphasKt
	// FiveD: nucleon number, αₛ and kT all vary.
	FiveD
)

func (c InterpolationConfig) String() string {
	switch c {
	case TwoD:
		return "TwoD"
	case ThreeDNucleons:
		return "ThreeDNucleons"
	case ThreeDAlphas:
		return "ThreeDAlphas"
	case ThreeDKt:
		return "ThreeDKt"
	case FourDNucleonsAlphas:
		return "FourDNucleonsAlphas"
	case FourDNucleonsKt:
		return "FourDNucleonsKt"
	case FourDAlphasKt:
		return "FourDAlphasKt"
	case FiveD:
		return "FiveD"
	default:
		return "InterpolationConfig(invalid)"
	}
}

// tensor axis positions in a SubGrid's 6-D logical shape
// [nucleons, alphas, pid, kts, xs, q2s].
const (
	axisNucleons = 0
	axisAlphas   = 1
	axisPid      = 2
	axisKts      = 3
	axisXs       = 4
	axisQ2s      = 5
)

// ConfigFor determines the InterpolationConfig of a SubGrid from the
// lengths of its nucleon, αₛ and kT axes.
func ConfigFor(sg *grid.SubGrid) InterpolationConfig {
	varyA := len(sg.Nucleons) > 1
	varyAlphas := len(sg.Alphas) > 1
	varyKt := len(sg.Kts) > 1
	switch {
	case varyA && varyAlphas && varyKt:
		return FiveD
	case varyA && varyAlphas:
		return FourDNucleonsAlphas
	case varyA && varyKt:
		return FourDNucleonsKt
	case varyAlphas && varyKt:
		return FourDAlphasKt
	case varyA:
		return ThreeDNucleons
	case varyAlphas:
		return ThreeDAlphas
	case varyKt:
		return ThreeDKt
	default:
		return TwoD
	}
}

// activeAxes returns the tensor axis indices (in the SubGrid's 6-D
// logical order) that a config keeps varying, in the order an
// interp.Strategy expects its point coordinates: extra axes first (in
// nucleon, αₛ, kT order), then x, then Q².
func activeAxes(c InterpolationConfig) []int {
	switch c {
	case TwoD:
		return []int{axisXs, axisQ2s}
	case ThreeDNucleons:
		return []int{axisNucleons, axisXs, axisQ2s}
	case ThreeDAlphas:
		return []int{axisAlphas, axisXs, axisQ2s}
	case ThreeDKt:
		return []int{axisKts, axisXs, axisQ2s}
	case FourDNucleonsAlphas:
		return []int{axisNucleons, axisAlphas, axisXs, axisQ2s}
	case FourDNucleonsKt:
		return []int{axisNucleons, axisKts, axisXs, axisQ2s}
	case FourDAlphasKt:
		return []int{axisAlphas, axisKts, axisXs, axisQ2s}
	case FiveD:
		return []int{axisNucleons, axisAlphas, axisKts, axisXs, axisQ2s}
	default:
		return nil
	}
}
