package interp

import (
	"math"
	"testing"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/pdferr"

	"errors"
)

func sampleValues(xs, q2s grid.Axis, f func(x, q2 float64) float64) *grid.Tensor {
	t := grid.NewTensor([]int{len(xs), len(q2s)}, nil)
	for i, x := range xs {
		for j, q2 := range q2s {
			t.Set(f(x, q2), i, j)
		}
	}
	return t
}

func TestLogBilinearReproducesKnots(t *testing.T) {
	t.Parallel()
	xs := grid.Axis{1e-5, 1e-3, 1e-1, 1}
	q2s := grid.Axis{1, 10, 100, 1000}
	f := func(x, q2 float64) float64 { return math.Log(x) + 2*math.Log(q2) }
	values := sampleValues(xs, q2s, f)
	bl, err := NewLogBilinear(xs, q2s, values)
	if err != nil {
		t.Fatalf("NewLogBilinear: %v", err)
	}
	for i, x := range xs {
		for j, q2 := range q2s {
			got, err := bl.Predict([]float64{x, q2})
			if err != nil {
				t.Fatalf("Predict(%g, %g): %v", x, q2, err)
			}
			want := values.At(i, j)
			if !closeEnough(got, want) {
				t.Errorf("Predict(%g, %g) = %g, want %g", x, q2, got, want)
			}
		}
	}
}

func TestLogBilinearOutOfRange(t *testing.T) {
	t.Parallel()
	xs := grid.Axis{1e-5, 1}
	q2s := grid.Axis{1, 100}
	bl, err := NewLogBilinear(xs, q2s, sampleValues(xs, q2s, func(x, q2 float64) float64 { return x + q2 }))
	if err != nil {
		t.Fatalf("NewLogBilinear: %v", err)
	}
	_, err = bl.Predict([]float64{1e80, 1})
	if !errors.Is(err, pdferr.ErrOutOfBounds) {
		t.Errorf("Predict out of range: got %v, want OutOfBoundsError", err)
	}
	_, err = bl.Predict([]float64{-1, 1})
	if !errors.Is(err, pdferr.ErrInvalidInput) {
		t.Errorf("Predict negative x: got %v, want InvalidInputError", err)
	}
}
