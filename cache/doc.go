// Package cache implements the optional, process-wide evaluation
// cache: a mutex-guarded map from a quantised evaluation key to its
// result, disabled by default. It is an optimisation only — results
// must be identical whether or not a lookup hits the cache.
package cache // import "github.com/neopdf/neopdf-go/cache"
