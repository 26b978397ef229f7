package interp

import (
	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/knots"
	"github.com/neopdf/neopdf-go/pdferr"
)

// NDLinear is the 4-D or 5-D multilinear strategy used when more than
// one of the nucleon-number, αₛ and kT axes vary at once. No log
// transform is applied: these axes are not physically log-spaced the
// way x and Q² are.
type NDLinear struct {
	axes   []grid.Axis
	values *grid.Tensor
}

// NewNDLinear builds an NDLinear over the given active axes (4 or 5
// of them, in tensor order) and a matching value tensor.
func NewNDLinear(axes []grid.Axis, values *grid.Tensor) (*NDLinear, error) {
	if len(axes) < 4 || len(axes) > 5 {
		return nil, &pdferr.InvalidInputError{Reason: "NDLinear requires 4 or 5 active axes", Value: float64(len(axes))}
	}
	return &NDLinear{axes: axes, values: values}, nil
}

func (nd *NDLinear) Arity() int { return len(nd.axes) }

// Predict returns the multilinearly interpolated value at point, one
// coordinate per active axis in the same order as NewNDLinear's axes.
func (nd *NDLinear) Predict(point []float64) (float64, error) {
	rank := len(nd.axes)
	if len(point) != rank {
		return 0, &pdferr.InvalidInputError{Reason: "NDLinear point arity mismatch", Value: float64(len(point))}
	}
	idx := make([]int, rank)
	frac := make([]float64, rank)
	for k, axis := range nd.axes {
		if len(axis) == 1 {
			idx[k] = 0
			frac[k] = 0
			continue
		}
		i, err := knots.FindIntervalIndex(axis, point[k])
		if err != nil {
			return 0, err
		}
		idx[k] = i
		frac[k] = (point[k] - axis[i]) / (axis[i+1] - axis[i])
	}

	var sum float64
	corners := 1 << uint(rank)
	cornerIdx := make([]int, rank)
	for c := 0; c < corners; c++ {
		weight := 1.0
		for k := 0; k < rank; k++ {
			if len(nd.axes[k]) == 1 {
				cornerIdx[k] = 0
				continue
			}
			if (c>>uint(k))&1 == 1 {
				cornerIdx[k] = idx[k] + 1
				weight *= frac[k]
			} else {
				cornerIdx[k] = idx[k]
				weight *= 1 - frac[k]
			}
		}
		if weight == 0 {
			continue
		}
		sum += weight * nd.values.At(cornerIdx...)
	}
	return sum, nil
}
