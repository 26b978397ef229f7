package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/neopdf/neopdf-go/pdferr"
)

// quarkMasses is a representative [u, d, s, c, b, t] table (GeV),
// following the PDG-ballpark values neopdf's own examples carry.
func quarkMasses() []float64 {
	return []float64{0.002, 0.005, 0.095, 1.29, 4.18, 172.76}
}

func TestAlphasAnalyticQCDOrderZeroIsConstant(t *testing.T) {
	t.Parallel()
	a, err := NewAlphasAnalytic(0, quarkMasses())
	if err != nil {
		t.Fatalf("NewAlphasAnalytic: %v", err)
	}
	for _, q2 := range []float64{10, 100, 1e4} {
		got, err := a.Predict([]float64{q2})
		if err != nil {
			t.Fatalf("Predict(%g): %v", q2, err)
		}
		if !closeEnough(got, 0.130) {
			t.Errorf("Predict(%g) = %g, want 0.130", q2, got)
		}
	}
}

func TestAlphasAnalyticBelowLandauPoleIsInfinite(t *testing.T) {
	t.Parallel()
	a, err := NewAlphasAnalytic(1, quarkMasses())
	if err != nil {
		t.Fatalf("NewAlphasAnalytic: %v", err)
	}
	got, err := a.Predict([]float64{lambdaQCD3 * lambdaQCD3})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Predict(Lambda3^2) = %g, want +Inf", got)
	}
}

func TestAlphasAnalyticMatchesLeadingOrderFormula(t *testing.T) {
	t.Parallel()
	a, err := NewAlphasAnalytic(1, quarkMasses())
	if err != nil {
		t.Fatalf("NewAlphasAnalytic: %v", err)
	}
	// Q^2 = 100 is above the charm and bottom thresholds but below
	// m_top^2, so nf = 5 and Lambda = lambdaQCD5.
	q2 := 100.0
	beta0 := (33.0 - 2.0*5.0) / (12.0 * math.Pi)
	want := 1.0 / (beta0 * math.Log(q2/(lambdaQCD5*lambdaQCD5)))
	got, err := a.Predict([]float64{q2})
	if err != nil {
		t.Fatalf("Predict(%g): %v", q2, err)
	}
	if !closeEnough(got, want) {
		t.Errorf("Predict(%g) = %g, want %g", q2, got, want)
	}
}

func TestAlphasAnalyticFlavorThresholdsShiftBeta0(t *testing.T) {
	t.Parallel()
	a, err := NewAlphasAnalytic(1, quarkMasses())
	if err != nil {
		t.Fatalf("NewAlphasAnalytic: %v", err)
	}
	mc2 := quarkMasses()[3] * quarkMasses()[3]
	below, err := a.Predict([]float64{mc2 * 0.99})
	if err != nil {
		t.Fatalf("Predict below charm threshold: %v", err)
	}
	above, err := a.Predict([]float64{mc2 * 1.01})
	if err != nil {
		t.Fatalf("Predict above charm threshold: %v", err)
	}
	if closeEnough(below, above) {
		t.Errorf("expected a discontinuity across the charm mass threshold, got %g and %g", below, above)
	}
}

func TestAlphasAnalyticRejectsShortQuarkMassTable(t *testing.T) {
	t.Parallel()
	_, err := NewAlphasAnalytic(1, []float64{0.002, 0.005})
	var invalid *pdferr.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("NewAlphasAnalytic with short mass table: got %v, want InvalidInputError", err)
	}
}

func TestAlphasAnalyticRejectsNegativeQ2(t *testing.T) {
	t.Parallel()
	a, err := NewAlphasAnalytic(1, quarkMasses())
	if err != nil {
		t.Fatalf("NewAlphasAnalytic: %v", err)
	}
	_, err = a.Predict([]float64{-1})
	if !errors.Is(err, pdferr.ErrInvalidInput) {
		t.Errorf("Predict(-1): got %v, want InvalidInputError", err)
	}
}
