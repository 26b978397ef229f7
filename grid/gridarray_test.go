package grid

import (
	"errors"
	"testing"

	"github.com/neopdf/neopdf-go/pdferr"
)

func mustSubGrid(t *testing.T, xs, q2s Axis) *SubGrid {
	t.Helper()
	sg, err := NewSubGrid(Axis{1}, Axis{1}, Axis{1}, xs, q2s, 1, flatValues(1, 1, 1, 1, len(xs), len(q2s)))
	if err != nil {
		t.Fatalf("NewSubGrid: %v", err)
	}
	return sg
}

func TestGridArrayFindSubgrid(t *testing.T) {
	t.Parallel()
	low := mustSubGrid(t, Axis{1e-9, 1e-5, 1e-1}, Axis{1, 2, 4})
	high := mustSubGrid(t, Axis{1e-9, 1e-5, 1e-1}, Axis{4, 10, 100})
	ga, err := NewGridArray([]int{21}, []*SubGrid{low, high})
	if err != nil {
		t.Fatalf("NewGridArray: %v", err)
	}

	i, err := ga.FindSubgrid(1e-5, 3)
	if err != nil || i != 0 {
		t.Errorf("FindSubgrid(1e-5, 3) = (%d, %v), want (0, nil)", i, err)
	}
	// Boundary point at Q2=4 is inclusive on both subgrids; lowest index wins.
	i, err = ga.FindSubgrid(1e-5, 4)
	if err != nil || i != 0 {
		t.Errorf("FindSubgrid(1e-5, 4) = (%d, %v), want (0, nil)", i, err)
	}
	i, err = ga.FindSubgrid(1e-5, 50)
	if err != nil || i != 1 {
		t.Errorf("FindSubgrid(1e-5, 50) = (%d, %v), want (1, nil)", i, err)
	}
	_, err = ga.FindSubgrid(1e-5, 1e80)
	if !errors.Is(err, pdferr.ErrSubgridNotFound) {
		t.Errorf("FindSubgrid far out of range: got %v, want SubgridNotFoundError", err)
	}
}

func TestGridArrayPidIndex(t *testing.T) {
	t.Parallel()
	sg := mustSubGrid(t, Axis{1e-5, 1}, Axis{1, 100})
	ga, err := NewGridArray([]int{1, 2, 21}, []*SubGrid{
		{
			Nucleons: sg.Nucleons, Alphas: sg.Alphas, Kts: sg.Kts, Xs: sg.Xs, Q2s: sg.Q2s,
			NPID: 3, Values: NewTensor([]int{1, 1, 3, 1, 2, 2}, nil),
			nucleonRange: sg.NucleonRange(), alphaRange: sg.AlphaRange(), ktRange: sg.KtRange(),
			xRange: sg.XRange(), q2Range: sg.Q2Range(),
		},
	})
	if err != nil {
		t.Fatalf("NewGridArray: %v", err)
	}
	idx, err := ga.PidIndex(21)
	if err != nil || idx != 2 {
		t.Errorf("PidIndex(21) = (%d, %v), want (2, nil)", idx, err)
	}
	_, err = ga.PidIndex(99)
	if !errors.Is(err, pdferr.ErrUnknownFlavor) {
		t.Errorf("PidIndex(99): got %v, want UnknownFlavorError", err)
	}
}
