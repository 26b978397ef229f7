package interp

import (
	"math"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/knots"
	"github.com/neopdf/neopdf-go/pdferr"
)

// LogTricubic is the 3-D (log x, log Q², log z) strategy used for the
// ThreeDNucleons, ThreeDAlphas and ThreeDKt dispatch configurations,
// where z is whichever of the nucleon-number, αₛ or kT axes is the
// one varying in that subgrid. It applies sequential 1-D Hermite
// cubics (cubicAt1D, see hermite1d.go) along x, then Q², then z, each
// with central/forward/backward derivative estimates in the
// log-coordinate space.
type LogTricubic struct {
	lnZ, lnX, lnQ2 []float64
	values         *grid.Tensor // shape [len(lnZ), len(lnX), len(lnQ2)]
}

// NewLogTricubic builds a LogTricubic over the given z, x and Q² axes
// and a value tensor of shape [len(zs), len(xs), len(q2s)]. It
// requires at least four knots on each axis.
func NewLogTricubic(zs, xs, q2s grid.Axis, values *grid.Tensor) (*LogTricubic, error) {
	if len(zs) < 4 {
		return nil, &pdferr.DegenerateGridError{Axis: "z", Index: len(zs)}
	}
	if len(xs) < 4 {
		return nil, &pdferr.DegenerateGridError{Axis: "x", Index: len(xs)}
	}
	if len(q2s) < 4 {
		return nil, &pdferr.DegenerateGridError{Axis: "q2", Index: len(q2s)}
	}
	return &LogTricubic{
		lnZ:    logAxis(zs),
		lnX:    logAxis(xs),
		lnQ2:   logAxis(q2s),
		values: values,
	}, nil
}

func (tc *LogTricubic) Arity() int { return 3 }

// Predict returns the interpolated value at point = [z, x, Q²].
func (tc *LogTricubic) Predict(point []float64) (float64, error) {
	if len(point) != 3 {
		return 0, &pdferr.InvalidInputError{Reason: "LogTricubic expects a 3-element point"}
	}
	z, x, q2 := point[0], point[1], point[2]
	for _, c := range []struct {
		name string
		v    float64
	}{{"z", z}, {"x", x}, {"q2", q2}} {
		if err := requirePositive(c.name, c.v); err != nil {
			return 0, err
		}
	}
	lnz, lnx, lnq2 := math.Log(z), math.Log(x), math.Log(q2)

	iz, err := knots.FindIntervalIndex(tc.lnZ, lnz)
	if err != nil {
		return 0, err
	}
	ix, err := knots.FindIntervalIndex(tc.lnX, lnx)
	if err != nil {
		return 0, err
	}
	iq, err := knots.FindIntervalIndex(tc.lnQ2, lnq2)
	if err != nil {
		return 0, err
	}
	ux := (lnx - tc.lnX[ix]) / (tc.lnX[ix+1] - tc.lnX[ix])
	uq := (lnq2 - tc.lnQ2[iq]) / (tc.lnQ2[iq+1] - tc.lnQ2[iq])
	uz := (lnz - tc.lnZ[iz]) / (tc.lnZ[iz+1] - tc.lnZ[iz])

	// interpolate along x for the (jz, jq) plane.
	xAt := func(jz, jq int) float64 {
		return cubicAt1D(tc.lnX, func(k int) float64 { return tc.values.At(jz, k, jq) }, ix, ux)
	}
	// interpolate along q2, holding z fixed at jz.
	qAt := func(jz int) float64 {
		return cubicAt1D(tc.lnQ2, func(k int) float64 { return xAt(jz, k) }, iq, uq)
	}
	// interpolate along z.
	return cubicAt1D(tc.lnZ, func(k int) float64 { return qAt(k) }, iz, uz), nil
}
