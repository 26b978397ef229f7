// Package grid implements the subgrid data model of the neopdf
// interpolation engine: the Axis, Tensor, SubGrid and GridArray types
// that a parsed PDF member is built from, plus the invariant checks
// every importer-produced SubGrid must satisfy before it can be used
// for evaluation.
package grid // import "github.com/neopdf/neopdf-go/grid"
