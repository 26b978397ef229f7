// Package config holds the small set of knobs, passed to each GridPDF
// at construction, that affect how it evaluates without being part of
// its public per-call contract: how many goroutines a bulk evaluation
// may use, and whether the GridPDF consults the optional evaluation
// cache.
package config // import "github.com/neopdf/neopdf-go/config"
