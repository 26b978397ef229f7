package interp

import (
	"math"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/knots"
	"github.com/neopdf/neopdf-go/pdferr"
	"gonum.org/v1/gonum/mat"
)

// LogBicubic is the 2-D (log x, log Q²) strategy. It reproduces the
// LHAPDF bicubic semantics: a Hermite cubic along log x, precomputed
// per (x-cell, Q²-row) as power-basis coefficients (the same
// RAM-for-throughput trade-off as gonum's PiecewiseCubic.coeffs, see
// interp/cubic.go), with the log Q² direction handled at evaluation
// time by a second Hermite cubic whose derivative estimate blends the
// neighbouring rows by their relative spacing.
type LogBicubic struct {
	lnX, lnQ2 []float64

	// rowCoeffs[j] has shape (len(lnX)-1, 4): coefficients (a,b,c,d)
	// of a*u^3+b*u^2+c*u+d for cell i, row j, with u spanning
	// [lnX[i], lnX[i+1]].
	rowCoeffs []*mat.Dense
}

// NewLogBicubic builds a LogBicubic over the given x and Q² axes and a
// value tensor of shape [len(xs), len(q2s)]. It requires at least four
// knots on each axis.
func NewLogBicubic(xs, q2s grid.Axis, values *grid.Tensor) (*LogBicubic, error) {
	nx, nq2 := len(xs), len(q2s)
	if nx < 4 {
		return nil, &pdferr.DegenerateGridError{Axis: "x", Index: nx}
	}
	if nq2 < 4 {
		return nil, &pdferr.DegenerateGridError{Axis: "q2", Index: nq2}
	}
	lnX := logAxis(xs)
	lnQ2 := logAxis(q2s)

	rowCoeffs := make([]*mat.Dense, nq2)
	for j := 0; j < nq2; j++ {
		row := make([]float64, nx)
		for i := 0; i < nx; i++ {
			row[i] = values.At(i, j)
		}
		coeffs := mat.NewDense(nx-1, 4, nil)
		for i := 0; i < nx-1; i++ {
			dx := lnX[i+1] - lnX[i]
			vLo, vHi := row[i], row[i+1]
			dLo := rowDerivative(lnX, row, i) * dx
			dHi := rowDerivative(lnX, row, i+1) * dx
			a, b, c, d := hermiteCoeffs(vLo, dLo, vHi, dHi)
			coeffs.SetRow(i, []float64{a, b, c, d})
		}
		rowCoeffs[j] = coeffs
	}
	return &LogBicubic{lnX: lnX, lnQ2: lnQ2, rowCoeffs: rowCoeffs}, nil
}

// rowDerivative estimates d(row)/d(lnX) at knot k using a central
// difference at interior knots and a one-sided difference at the
// edges.
func rowDerivative(lnX, row []float64, k int) float64 {
	n := len(lnX)
	switch {
	case k == 0:
		return knots.Slope(lnX[0], row[0], lnX[1], row[1])
	case k == n-1:
		return knots.Slope(lnX[n-2], row[n-2], lnX[n-1], row[n-1])
	default:
		return knots.Slope(lnX[k-1], row[k-1], lnX[k+1], row[k+1])
	}
}

func (b *LogBicubic) Arity() int { return 2 }

// Predict returns the interpolated value at point = [x, Q²].
func (b *LogBicubic) Predict(point []float64) (float64, error) {
	if len(point) != 2 {
		return 0, &pdferr.InvalidInputError{Reason: "LogBicubic expects a 2-element point"}
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
	u := (lnx - b.lnX[i]) / (b.lnX[i+1] - b.lnX[i])

	evalRow := func(row int) float64 {
		c := b.rowCoeffs[row].RawRowView(i)
		return evalCoeffs(c[0], c[1], c[2], c[3], u)
	}

	vLo := evalRow(j)
	vHi := evalRow(j + 1)

	nq2 := len(b.lnQ2)
	deltaMid := b.lnQ2[j+1] - b.lnQ2[j]

	var dLo, dHi float64
	if j == 0 {
		dLo = vHi - vLo
	} else {
		vLL := evalRow(j - 1)
		deltaLow := b.lnQ2[j] - b.lnQ2[j-1]
		dLo = 0.5 * ((vHi - vLo) + (vLo-vLL)*deltaMid/deltaLow)
	}
	if j == nq2-2 {
		dHi = vHi - vLo
	} else {
		vHH := evalRow(j + 2)
		deltaHigh := b.lnQ2[j+2] - b.lnQ2[j+1]
		dHi = 0.5 * ((vHi - vLo) + (vHH-vHi)*deltaMid/deltaHigh)
	}

	t := (lnq2 - b.lnQ2[j]) / deltaMid
	return knots.Hermite(t, vLo, dLo, vHi, dHi), nil
}
