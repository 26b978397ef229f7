package interp

import (
	"math"
	"testing"

	"github.com/neopdf/neopdf-go/grid"
)

func TestNDLinearReproducesKnotsAndInterpolatesLinearly(t *testing.T) {
	t.Parallel()
	nucleons := grid.Axis{1, 12, 56}
	alphas := grid.Axis{0.1, 0.2}
	xs := grid.Axis{1e-3, 1e-1}
	q2s := grid.Axis{1, 100}
	dims := []int{len(nucleons), len(alphas), len(xs), len(q2s)}
	values := grid.NewTensor(dims, nil)
	f := func(a, al, x, q2 float64) float64 { return a + 10*al + 100*x + 1000*q2 }
	for ia, a := range nucleons {
		for il, al := range alphas {
			for ix, x := range xs {
				for iq, q2 := range q2s {
					values.Set(f(a, al, x, q2), ia, il, ix, iq)
				}
			}
		}
	}
	nd, err := NewNDLinear([]grid.Axis{nucleons, alphas, xs, q2s}, values)
	if err != nil {
		t.Fatalf("NewNDLinear: %v", err)
	}
	for ia, a := range nucleons {
		for il, al := range alphas {
			for ix, x := range xs {
				for iq, q2 := range q2s {
					got, err := nd.Predict([]float64{a, al, x, q2})
					if err != nil {
						t.Fatalf("Predict: %v", err)
					}
					want := values.At(ia, il, ix, iq)
					if math.Abs(got-want) > 1e-9 {
						t.Errorf("Predict(%g,%g,%g,%g) = %g, want %g", a, al, x, q2, got, want)
					}
				}
			}
		}
	}
	// Linear function: midpoint should reproduce f exactly.
	mid, err := nd.Predict([]float64{6.5, 0.15, 0.0505, 50.5})
	if err != nil {
		t.Fatalf("Predict midpoint: %v", err)
	}
	want := f(6.5, 0.15, 0.0505, 50.5)
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("Predict midpoint = %g, want %g", mid, want)
	}
}
