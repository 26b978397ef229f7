package gridpdf

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/neopdf/neopdf-go/cache"
	"github.com/neopdf/neopdf-go/config"
	"github.com/neopdf/neopdf-go/dispatch"
	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/interp"
	"github.com/neopdf/neopdf-go/metadata"
	"github.com/neopdf/neopdf-go/pdferr"
)

// nextIdentity assigns each GridPDF a process-unique id for use as
// the cache.Key identity component; it is otherwise meaningless.
var nextIdentity uint64

// sharedCache is the process-wide evaluation cache consulted by every
// GridPDF built with opts.CacheEnabled; entries are told apart by the
// GridPDF identity in their key.
var sharedCache = cache.New()

// GridPDF binds one GridArray to its MetaData and owns the
// interpolation strategy built for every (subgrid, flavor) pair. It
// is immutable after construction except for the force-positive mode,
// which is guarded by mu so XFxQ2/XFxQ2Bulk remain safe to call
// concurrently with SetForcePositive.
type GridPDF struct {
	array *grid.GridArray
	meta  *metadata.MetaData
	opts  config.Options

	// strategies[s][f] is the interpolator for subgrid s, flavor
	// index f, built once at construction time.
	strategies [][]interp.Strategy
	alphaStrat interp.Strategy

	identity uint64
	cache    *cache.Cache // nil unless opts.CacheEnabled

	mu            sync.RWMutex
	forcePositive ForcePositive
}

// New binds array to meta, builds every (subgrid, flavor)
// interpolator, and builds the αₛ(Q²) strategy. Sets that ship a
// tabulated αₛ(Q) table use AlphasCubic; sets without one (no
// AlphaSKnots) fall back to AlphasAnalytic, the leading-order running
// formula driven by meta's QCD order and quark masses, the same
// table-present/table-absent split neopdf's own AlphaS::from_metadata
// makes. It fails if any subgrid/flavor interpolator or the αₛ
// strategy cannot be constructed (e.g. too few knots for the
// dispatched strategy).
func New(array *grid.GridArray, meta *metadata.MetaData, opts config.Options) (*GridPDF, error) {
	strategies := make([][]interp.Strategy, len(array.Subgrids))
	for s, sg := range array.Subgrids {
		row := make([]interp.Strategy, len(array.Pids))
		for f := range array.Pids {
			strat, err := dispatch.BuildStrategy(sg, f)
			if err != nil {
				return nil, err
			}
			row[f] = strat
		}
		strategies[s] = row
	}

	alphaStrat, err := buildAlphaStrategy(meta)
	if err != nil {
		return nil, err
	}

	gp := &GridPDF{
		array:      array,
		meta:       meta,
		opts:       opts,
		strategies: strategies,
		alphaStrat: alphaStrat,
		identity:   atomic.AddUint64(&nextIdentity, 1),
	}
	if opts.CacheEnabled {
		gp.cache = sharedCache
	}
	return gp, nil
}

// buildAlphaStrategy picks AlphasCubic when meta carries a tabulated
// αₛ(Q) curve and AlphasAnalytic otherwise.
func buildAlphaStrategy(meta *metadata.MetaData) (interp.Strategy, error) {
	if len(meta.AlphaSKnots) == 0 {
		return interp.NewAlphasAnalytic(meta.QCDOrder, meta.QuarkMasses)
	}
	q2 := make([]float64, len(meta.AlphaSKnots))
	alphas := make([]float64, len(meta.AlphaSKnots))
	for i, k := range meta.AlphaSKnots {
		q2[i] = k.Q * k.Q
		alphas[i] = k.Alphas
	}
	return interp.NewAlphasCubic(q2, alphas)
}

// XFxQ2 returns x·f(flavor) at point, which is [x, Q²] for a TwoD
// subgrid or the full active-axes vector ([nucleons], [alphas],
// [kts], x, Q²) in the subgrid's InterpolationConfig order otherwise.
// The subgrid is selected from the last two coordinates of point (x,
// Q²); every other coordinate is passed through to that subgrid's
// strategy unchanged.
func (p *GridPDF) XFxQ2(flavor int, point []float64) (float64, error) {
	if len(point) < 2 {
		return 0, &pdferr.InvalidInputError{Reason: "XFxQ2 point must carry at least [x, q2]"}
	}

	var key cache.Key
	if p.cache != nil {
		key = cache.MakeKey(p.identity, flavor, point)
		if v, ok := p.cache.Get(key); ok {
			return p.applyForcePositive(v), nil
		}
	}

	x, q2 := point[len(point)-2], point[len(point)-1]

	pidIdx, err := p.array.PidIndex(flavor)
	if err != nil {
		return 0, err
	}
	sgIdx, err := p.array.FindSubgrid(x, q2)
	if err != nil {
		return 0, err
	}

	v, err := p.strategies[sgIdx][pidIdx].Predict(point)
	if err != nil {
		return 0, err
	}
	if p.cache != nil {
		p.cache.Put(key, v)
	}
	return p.applyForcePositive(v), nil
}

func (p *GridPDF) applyForcePositive(v float64) float64 {
	p.mu.RLock()
	mode := p.forcePositive
	p.mu.RUnlock()
	return mode.apply(v)
}

// AlphasQ2 returns αₛ(Q²), delegating to the strategy New built from
// MetaData (AlphasCubic over its αₛ(Q) knot table, or AlphasAnalytic
// when that table is empty). It is never affected by the
// force-positive mode.
func (p *GridPDF) AlphasQ2(q2 float64) (float64, error) {
	return p.alphaStrat.Predict([]float64{q2})
}

// SetForcePositive sets the post-processing clamp applied by XFxQ2
// and XFxQ2Bulk.
func (p *GridPDF) SetForcePositive(mode ForcePositive) {
	p.mu.Lock()
	p.forcePositive = mode
	p.mu.Unlock()
}

// XFxQ2Bulk evaluates every (flavor, x, Q²) combination and returns a
// tensor of shape [len(flavors), len(xs), len(q2s)]. Elements are
// computed concurrently, bounded by opts.Workers; the first error
// encountered cancels the remaining work and XFxQ2Bulk returns it
// with no partial tensor.
func (p *GridPDF) XFxQ2Bulk(flavors []int, xs, q2s []float64) (*grid.Tensor, error) {
	out := grid.NewTensor([]int{len(flavors), len(xs), len(q2s)}, nil)
	n := len(flavors) * len(xs) * len(q2s)
	if n == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(p.opts.Workers(n))
	for fi, flavor := range flavors {
		for xi, x := range xs {
			for qi, q2v := range q2s {
				fi, xi, qi, flavor, x, q2v := fi, xi, qi, flavor, x, q2v
				g.Go(func() error {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					v, err := p.XFxQ2(flavor, []float64{x, q2v})
					if err != nil {
						return err
					}
					out.Set(v, fi, xi, qi)
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParamRanges returns the axis-wise min/max spanned by this member's
// subgrids, computed fresh from the GridArray rather than taken from
// MetaData (which records the range for the whole archive, not
// necessarily this one member).
func (p *GridPDF) ParamRanges() AxisRanges {
	r := AxisRanges{
		Nucleons: p.array.Subgrids[0].NucleonRange(),
		Alphas:   p.array.Subgrids[0].AlphaRange(),
		Kt:       p.array.Subgrids[0].KtRange(),
		X:        p.array.Subgrids[0].XRange(),
		Q2:       p.array.Subgrids[0].Q2Range(),
	}
	for _, sg := range p.array.Subgrids[1:] {
		r.Nucleons = union(r.Nucleons, sg.NucleonRange())
		r.Alphas = union(r.Alphas, sg.AlphaRange())
		r.Kt = union(r.Kt, sg.KtRange())
		r.X = union(r.X, sg.XRange())
		r.Q2 = union(r.Q2, sg.Q2Range())
	}
	return r
}

// Pids returns the ordered flavor list.
func (p *GridPDF) Pids() []int { return append([]int(nil), p.array.Pids...) }

// NumSubgrids returns the number of subgrids tiling this member.
func (p *GridPDF) NumSubgrids() int { return len(p.array.Subgrids) }

// Subgrid returns the i-th subgrid.
func (p *GridPDF) Subgrid(i int) *grid.SubGrid { return p.array.Subgrids[i] }

// Metadata returns the shared descriptive record.
func (p *GridPDF) Metadata() *metadata.MetaData { return p.meta }
