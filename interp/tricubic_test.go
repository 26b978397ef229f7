package interp

import (
	"math"
	"testing"

	"github.com/neopdf/neopdf-go/grid"
)

func sample3D(zs, xs, q2s grid.Axis, f func(z, x, q2 float64) float64) *grid.Tensor {
	t := grid.NewTensor([]int{len(zs), len(xs), len(q2s)}, nil)
	for a, z := range zs {
		for i, x := range xs {
			for j, q2 := range q2s {
				t.Set(f(z, x, q2), a, i, j)
			}
		}
	}
	return t
}

func TestLogTricubicReproducesKnots(t *testing.T) {
	t.Parallel()
	zs := grid.Axis{1, 2, 4, 8}
	xs := grid.Axis{1e-5, 1e-3, 1e-1, 1}
	q2s := grid.Axis{1, 10, 100, 1000}
	f := func(z, x, q2 float64) float64 {
		return math.Log(z) + math.Log(x) + math.Log(q2)
	}
	values := sample3D(zs, xs, q2s, f)
	tc, err := NewLogTricubic(zs, xs, q2s, values)
	if err != nil {
		t.Fatalf("NewLogTricubic: %v", err)
	}
	for a, z := range zs {
		for i, x := range xs {
			for j, q2 := range q2s {
				got, err := tc.Predict([]float64{z, x, q2})
				if err != nil {
					t.Fatalf("Predict(%g, %g, %g): %v", z, x, q2, err)
				}
				want := values.At(a, i, j)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("Predict(%g, %g, %g) = %g, want %g", z, x, q2, got, want)
				}
			}
		}
	}
}

func TestLogTricubicRequiresFourKnots(t *testing.T) {
	t.Parallel()
	zs := grid.Axis{1, 2, 4}
	xs := grid.Axis{1e-5, 1e-3, 1e-1, 1}
	q2s := grid.Axis{1, 10, 100, 1000}
	_, err := NewLogTricubic(zs, xs, q2s, sample3D(zs, xs, q2s, func(z, x, q2 float64) float64 { return 0 }))
	if err == nil {
		t.Fatal("NewLogTricubic with 3 z-knots: expected error")
	}
}
