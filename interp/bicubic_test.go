package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/pdferr"
)

func TestLogBicubicReproducesKnots(t *testing.T) {
	t.Parallel()
	xs := grid.Axis{1e-6, 1e-4, 1e-2, 1e-1, 1}
	q2s := grid.Axis{1, 4, 10, 100, 10000}
	f := func(x, q2 float64) float64 { return math.Sin(math.Log(x)) + math.Log(q2) }
	values := sampleValues(xs, q2s, f)
	bc, err := NewLogBicubic(xs, q2s, values)
	if err != nil {
		t.Fatalf("NewLogBicubic: %v", err)
	}
	for i, x := range xs {
		for j, q2 := range q2s {
			got, err := bc.Predict([]float64{x, q2})
			if err != nil {
				t.Fatalf("Predict(%g, %g): %v", x, q2, err)
			}
			want := values.At(i, j)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Predict(%g, %g) = %g, want %g", x, q2, got, want)
			}
		}
	}
}

func TestLogBicubicRequiresFourKnots(t *testing.T) {
	t.Parallel()
	xs := grid.Axis{1e-3, 1e-1, 1}
	q2s := grid.Axis{1, 10, 100, 1000}
	_, err := NewLogBicubic(xs, q2s, sampleValues(xs, q2s, func(x, q2 float64) float64 { return 0 }))
	if !errors.Is(err, pdferr.ErrDegenerateGrid) {
		t.Errorf("NewLogBicubic with 3 x-knots: got %v, want DegenerateGridError", err)
	}
}

func TestLogBicubicSmooth(t *testing.T) {
	t.Parallel()
	xs := grid.Axis{1e-6, 1e-4, 1e-2, 1e-1, 1}
	q2s := grid.Axis{1, 4, 10, 100, 10000}
	// A bilinear-in-log function should interpolate smoothly between
	// knots with no large overshoot.
	f := func(x, q2 float64) float64 { return math.Log(x) + 2*math.Log(q2) }
	values := sampleValues(xs, q2s, f)
	bc, err := NewLogBicubic(xs, q2s, values)
	if err != nil {
		t.Fatalf("NewLogBicubic: %v", err)
	}
	got, err := bc.Predict([]float64{1e-3, 50})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := f(1e-3, 50)
	if math.Abs(got-want) > 0.5 {
		t.Errorf("Predict(1e-3, 50) = %g, want approximately %g", got, want)
	}
}
