// Package gridpdf is the public evaluation facade: it binds one
// GridArray to its MetaData, builds one interpolation strategy per
// (subgrid, flavor) pair up front, and exposes the per-point and bulk
// evaluation contract consumed by bindings and the CLI.
package gridpdf // import "github.com/neopdf/neopdf-go/gridpdf"
