package grid

import (
	"math"

	"github.com/neopdf/neopdf-go/pdferr"
)

// SubGrid is a rectangular tile over up to five physical axes
// (nucleon number A, αₛ, transverse momentum kT, Bjorken x, and Q²)
// and a dense 6-D tensor of x·f(flavor) values. Any of Nucleons,
// Alphas or Kts may have length 1, meaning that axis is "not varying"
// for this tile. SubGrid is immutable once constructed by NewSubGrid.
type SubGrid struct {
	Nucleons Axis
	Alphas   Axis
	Kts      Axis
	Xs       Axis
	Q2s      Axis

	// NPID is the number of flavors this tile's tensor carries; it
	// must equal the length of the owning GridArray's Pids.
	NPID int

	// Values has logical shape [len(Nucleons), len(Alphas), NPID,
	// len(Kts), len(Xs), len(Q2s)], row-major in that axis order.
	Values *Tensor

	nucleonRange ParamRange
	alphaRange   ParamRange
	ktRange      ParamRange
	xRange       ParamRange
	q2Range      ParamRange
}

// NewSubGrid validates axes and values and builds a SubGrid. values
// must be in row-major order for shape
// [len(nucleons), len(alphas), nPID, len(kts), len(xs), len(q2s)].
// All axes are treated as physically positive quantities (nucleon
// number, αₛ, kT, x, Q² are never negative in this domain), so every
// axis is validated as if log-scaled.
func NewSubGrid(nucleons, alphas, kts, xs, q2s Axis, nPID int, values []float64) (*SubGrid, error) {
	for _, a := range []struct {
		name string
		axis Axis
	}{
		{"nucleons", nucleons},
		{"alphas", alphas},
		{"kts", kts},
		{"x", xs},
		{"q2", q2s},
	} {
		if err := a.axis.Validate(a.name, true); err != nil {
			return nil, err
		}
	}
	if nPID <= 0 {
		return nil, &pdferr.InvalidInputError{Reason: "nPID must be positive", Value: float64(nPID)}
	}
	dims := []int{len(nucleons), len(alphas), nPID, len(kts), len(xs), len(q2s)}
	tensor := NewTensor(dims, values)
	for _, v := range tensor.RawData() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &pdferr.InvalidInputError{Reason: "non-finite value in grid tensor", Value: v}
		}
	}
	return &SubGrid{
		Nucleons:     append(Axis(nil), nucleons...),
		Alphas:       append(Axis(nil), alphas...),
		Kts:          append(Axis(nil), kts...),
		Xs:           append(Axis(nil), xs...),
		Q2s:          append(Axis(nil), q2s...),
		NPID:         nPID,
		Values:       tensor,
		nucleonRange: nucleons.Range(),
		alphaRange:   alphas.Range(),
		ktRange:      kts.Range(),
		xRange:       xs.Range(),
		q2Range:      q2s.Range(),
	}, nil
}

// NucleonRange, AlphaRange, KtRange, XRange and Q2Range return the
// cached inclusive extent of the corresponding axis.
func (s *SubGrid) NucleonRange() ParamRange { return s.nucleonRange }
func (s *SubGrid) AlphaRange() ParamRange   { return s.alphaRange }
func (s *SubGrid) KtRange() ParamRange      { return s.ktRange }
func (s *SubGrid) XRange() ParamRange       { return s.xRange }
func (s *SubGrid) Q2Range() ParamRange      { return s.q2Range }

// Point is a kinematic query in the SubGrid's full coordinate space:
// nucleon number, αₛ, kT, x and Q². Every field is checked by
// Contains, so for an axis of length 1 the field must equal that
// axis's single knot.
type Point struct {
	Nucleon, Alpha, Kt, X, Q2 float64
}

// Contains reports whether every coordinate of p lies within the
// inclusive range of its axis, including for axes of length 1 (which
// only contain their single knot value).
func (s *SubGrid) Contains(p Point) bool {
	return s.Nucleons.Contains(p.Nucleon) &&
		s.Alphas.Contains(p.Alpha) &&
		s.Kts.Contains(p.Kt) &&
		s.Xs.Contains(p.X) &&
		s.Q2s.Contains(p.Q2)
}

// Slice extracts the active-axes value tensor for one flavor index,
// holding the inactive axes (those of length 1, plus the pid axis)
// fixed. keep names the retained axes in the dense-tensor axis order
// (0=nucleons, 1=alphas, 2=pid, 3=kts, 4=xs, 5=q2s); pidIndex selects
// the flavor.
func (s *SubGrid) Slice(pidIndex int, keep []int) *Tensor {
	fixed := []int{0, 0, pidIndex, 0, 0, 0}
	return s.Values.Slice(keep, fixed)
}
