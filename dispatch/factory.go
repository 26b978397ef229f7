package dispatch

import (
	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/interp"
	"github.com/neopdf/neopdf-go/pdferr"
)

// bicubicMinKnots is the minimum per-axis knot count LogBicubic and
// LogTricubic require to build their Hermite stencils (see
// knots.FindBicubicInterval).
const bicubicMinKnots = 4

// axisValues returns the knot values of the SubGrid axis at tensor
// axis index i.
func axisValues(sg *grid.SubGrid, axis int) grid.Axis {
	switch axis {
	case axisNucleons:
		return sg.Nucleons
	case axisAlphas:
		return sg.Alphas
	case axisKts:
		return sg.Kts
	case axisXs:
		return sg.Xs
	case axisQ2s:
		return sg.Q2s
	default:
		return nil
	}
}

// BuildStrategy builds the interp.Strategy for one (subgrid, flavor)
// slice, selecting the concrete implementation from the subgrid's
// InterpolationConfig. pidIndex is the flavor's position in the
// owning GridArray's Pids.
func BuildStrategy(sg *grid.SubGrid, pidIndex int) (interp.Strategy, error) {
	cfg := ConfigFor(sg)
	keep := activeAxes(cfg)
	values := sg.Slice(pidIndex, keep)

	switch cfg {
	case TwoD:
		xs, q2s := sg.Xs, sg.Q2s
		if len(xs) >= bicubicMinKnots && len(q2s) >= bicubicMinKnots {
			return interp.NewLogBicubic(xs, q2s, values)
		}
		return interp.NewLogBilinear(xs, q2s, values)

	case ThreeDNucleons, ThreeDAlphas, ThreeDKt:
		z := axisValues(sg, keep[0])
		return interp.NewLogTricubic(z, sg.Xs, sg.Q2s, values)

	case FourDNucleonsAlphas, FourDNucleonsKt, FourDAlphasKt, FiveD:
		axes := make([]grid.Axis, len(keep))
		for i, ax := range keep {
			axes[i] = axisValues(sg, ax)
		}
		return interp.NewNDLinear(axes, values)

	default:
		return nil, &pdferr.InvalidInputError{Reason: "unrecognised interpolation configuration"}
	}
}
