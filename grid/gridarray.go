package grid

import "github.com/neopdf/neopdf-go/pdferr"

// GridArray is one member of a PDF set: an ordered flavor list and an
// ordered list of SubGrids that tile the supported kinematic domain.
// All of its subgrids share Pids and the same "configuration" (the
// lengths of their nucleon, αₛ and kT axes; see package dispatch).
type GridArray struct {
	Pids     []int
	Subgrids []*SubGrid
}

// NewGridArray builds a GridArray, checking that every subgrid agrees
// with pids on flavor count and shares the same configuration.
func NewGridArray(pids []int, subgrids []*SubGrid) (*GridArray, error) {
	if len(subgrids) == 0 {
		return nil, &pdferr.InvalidInputError{Reason: "GridArray requires at least one subgrid"}
	}
	nA := len(subgrids[0].Nucleons)
	nAlphas := len(subgrids[0].Alphas)
	nKt := len(subgrids[0].Kts)
	for _, sg := range subgrids {
		if sg.NPID != len(pids) {
			return nil, &pdferr.InvalidInputError{Reason: "subgrid flavor count does not match pids", Value: float64(sg.NPID)}
		}
		if len(sg.Nucleons) != nA || len(sg.Alphas) != nAlphas || len(sg.Kts) != nKt {
			return nil, &pdferr.InvalidInputError{Reason: "subgrid configuration (nucleon/alphas/kt lengths) mismatch"}
		}
	}
	return &GridArray{
		Pids:     append([]int(nil), pids...),
		Subgrids: subgrids,
	}, nil
}

// FindSubgrid returns the index of the first subgrid (in source order)
// whose x and Q² ranges both contain the point, inclusive of both
// endpoints. It fails with SubgridNotFoundError if no subgrid matches;
// there is no extrapolation across subgrid boundaries. A point on the
// shared boundary of two subgrids resolves to the lowest-index one.
func (ga *GridArray) FindSubgrid(x, q2 float64) (int, error) {
	for i, sg := range ga.Subgrids {
		if sg.XRange().contains(x) && sg.Q2Range().contains(q2) {
			return i, nil
		}
	}
	return 0, &pdferr.SubgridNotFoundError{X: x, Q2: q2}
}

// PidIndex returns the position of pid in Pids. It fails with
// UnknownFlavorError if pid is absent.
func (ga *GridArray) PidIndex(pid int) (int, error) {
	for i, p := range ga.Pids {
		if p == pid {
			return i, nil
		}
	}
	return 0, &pdferr.UnknownFlavorError{PID: pid}
}

func (r ParamRange) contains(v float64) bool { return v >= r.Min && v <= r.Max }
