// Package pdferr defines the error kinds returned by the grid, interp,
// dispatch, gridpdf and container packages. Each kind carries the
// offending coordinates or identifiers so that callers can diagnose
// misuse without re-deriving context from the call site.
package pdferr // import "github.com/neopdf/neopdf-go/pdferr"
