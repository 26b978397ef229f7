package config

import "runtime"

// Options is the settings structure for a GridPDF's bulk evaluation
// and caching behaviour. The zero value is valid: bulk evaluation
// runs sequentially and the evaluation cache is disabled, matching
// the package's conservative defaults.
type Options struct {
	// Concurrent enables parallel bulk evaluation. When false,
	// XFxQ2Bulk evaluates one element at a time.
	Concurrent bool

	// MaxWorkers caps the number of goroutines a concurrent bulk
	// evaluation may use. Zero means runtime.GOMAXPROCS(0).
	MaxWorkers int

	// CacheEnabled turns on the process-wide evaluation cache. It is
	// an optimisation only: results are identical whether or not it is
	// enabled.
	CacheEnabled bool
}

// workers returns the effective worker count for o, resolving the
// zero value to GOMAXPROCS and clamping to at most n (the amount of
// work available).
func (o Options) workers(n int) int {
	if !o.Concurrent || n <= 1 {
		return 1
	}
	w := o.MaxWorkers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	return w
}

// Workers exposes the effective worker count for a bulk job of size
// n, applying the same resolution Gradient-style concurrent helpers
// use: GOMAXPROCS by default, never more than the work available.
func (o Options) Workers(n int) int { return o.workers(n) }
