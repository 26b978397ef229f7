package interp

import (
	"math"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/knots"
	"github.com/neopdf/neopdf-go/pdferr"
)

// LogBilinear is the 2-D (log x, log Q²) strategy used when the
// subgrid's axes are too short for LogBicubic (fewer than four knots
// on either axis).
type LogBilinear struct {
	lnX, lnQ2 []float64
	values    *grid.Tensor // shape [len(lnX), len(lnQ2)]
}

// NewLogBilinear builds a LogBilinear over the given x and Q² axes and
// a value tensor of shape [len(xs), len(q2s)].
func NewLogBilinear(xs, q2s grid.Axis, values *grid.Tensor) (*LogBilinear, error) {
	if len(xs) < 2 || len(q2s) < 2 {
		return nil, &pdferr.DegenerateGridError{Axis: "bilinear", Index: len(xs)}
	}
	return &LogBilinear{
		lnX:    logAxis(xs),
		lnQ2:   logAxis(q2s),
		values: values,
	}, nil
}

func (b *LogBilinear) Arity() int { return 2 }

// Predict returns the interpolated value at point = [x, Q²].
func (b *LogBilinear) Predict(point []float64) (float64, error) {
	if len(point) != 2 {
		return 0, &pdferr.InvalidInputError{Reason: "LogBilinear expects a 2-element point"}
	}
	x, q2 := point[0], point[1]
	if err := requirePositive("x", x); err != nil {
		return 0, err
	}
	if err := requirePositive("q2", q2); err != nil {
		return 0, err
	}
	lnx, lnq2 := math.Log(x), math.Log(q2)
	i, err := knots.FindIntervalIndex(b.lnX, lnx)
	if err != nil {
		return 0, err
	}
	j, err := knots.FindIntervalIndex(b.lnQ2, lnq2)
	if err != nil {
		return 0, err
	}
	wx := (lnx - b.lnX[i]) / (b.lnX[i+1] - b.lnX[i])
	wq := (lnq2 - b.lnQ2[j]) / (b.lnQ2[j+1] - b.lnQ2[j])
	v00 := b.values.At(i, j)
	v10 := b.values.At(i+1, j)
	v01 := b.values.At(i, j+1)
	v11 := b.values.At(i+1, j+1)
	return (1-wx)*(1-wq)*v00 + wx*(1-wq)*v10 + (1-wx)*wq*v01 + wx*wq*v11, nil
}

func logAxis(a grid.Axis) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Log(v)
	}
	return out
}

func requirePositive(name string, v float64) error {
	if math.IsNaN(v) {
		return &pdferr.InvalidInputError{Reason: name + " is NaN", Value: v}
	}
	if v <= 0 {
		return &pdferr.InvalidInputError{Reason: name + " must be positive on a log-scaled axis", Value: v}
	}
	return nil
}
