package interp

import (
	"math"

	"github.com/neopdf/neopdf-go/pdferr"
)

// Leading-order Lambda_QCD values (GeV) for 3, 4 and 5-or-6 active
// flavours. These are fixed constants, not fitted from the grid: the
// analytic strategy is only ever used when no tabulated αₛ values
// exist to fit one from.
const (
	lambdaQCD3 = 0.339
	lambdaQCD4 = 0.296
	lambdaQCD5 = 0.213
)

// AlphasAnalytic computes αₛ(Q²) from the leading-order running
// formula instead of interpolating a tabulated curve, for sets that
// ship physical constants (QCD order, quark masses) but no αₛ(Q)
// table. The number of active flavours at a given Q² is derived from
// the charm/bottom/top mass thresholds; a zero mass disables its
// threshold (the flavour never turns on).
type AlphasAnalytic struct {
	qcdOrder  int
	mCharmSq  float64
	mBottomSq float64
	mTopSq    float64
}

// NewAlphasAnalytic builds an AlphasAnalytic from a QCD perturbative
// order and a quark mass table ordered [up, down, strange, charm,
// bottom, top], the layout MetaData.QuarkMasses carries. Only the
// charm, bottom and top entries are used.
func NewAlphasAnalytic(qcdOrder int, quarkMasses []float64) (*AlphasAnalytic, error) {
	if len(quarkMasses) < 6 {
		return nil, &pdferr.InvalidInputError{Reason: "alphas: quark mass table needs entries for u,d,s,c,b,t"}
	}
	mc, mb, mt := quarkMasses[3], quarkMasses[4], quarkMasses[5]
	return &AlphasAnalytic{
		qcdOrder:  qcdOrder,
		mCharmSq:  mc * mc,
		mBottomSq: mb * mb,
		mTopSq:    mt * mt,
	}, nil
}

func (a *AlphasAnalytic) Arity() int { return 1 }

// Predict returns αₛ(Q²) at point = [Q²]. It returns +Inf at or below
// the Landau pole (Q² <= Λ²) for the active flavour count, and the
// fixed value 0.130 when the set declares QCD order 0 (no running).
func (a *AlphasAnalytic) Predict(point []float64) (float64, error) {
	if len(point) != 1 {
		return 0, &pdferr.InvalidInputError{Reason: "AlphasAnalytic expects a 1-element point"}
	}
	q2 := point[0]
	if math.IsNaN(q2) {
		return 0, &pdferr.InvalidInputError{Reason: "q2 is NaN", Value: q2}
	}
	if q2 < 0 {
		return 0, &pdferr.InvalidInputError{Reason: "q2 must be non-negative", Value: q2}
	}

	nf := a.numFlavorsQ2(q2)
	lambda := a.lambdaQCD(nf)
	if q2 <= lambda*lambda {
		return math.Inf(1), nil
	}
	if a.qcdOrder == 0 {
		return 0.130, nil
	}

	beta0 := (33.0 - 2.0*float64(nf)) / (12.0 * math.Pi)
	t := math.Log(q2 / (lambda * lambda))
	return 1.0 / (beta0 * t), nil
}

func (a *AlphasAnalytic) numFlavorsQ2(q2 float64) int {
	switch {
	case q2 > a.mTopSq && a.mTopSq > 0:
		return 6
	case q2 > a.mBottomSq && a.mBottomSq > 0:
		return 5
	case q2 > a.mCharmSq && a.mCharmSq > 0:
		return 4
	default:
		return 3
	}
}

func (a *AlphasAnalytic) lambdaQCD(nf int) float64 {
	switch nf {
	case 3:
		return lambdaQCD3
	case 4:
		return lambdaQCD4
	case 5, 6:
		return lambdaQCD5
	default:
		return 0
	}
}
