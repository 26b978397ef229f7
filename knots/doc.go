// Package knots provides the binary-search and Hermite-basis
// primitives shared by every interpolation strategy in package interp:
// locating the knot interval that brackets a query point, and
// evaluating a cubic Hermite polynomial from endpoint values and
// derivatives.
package knots // import "github.com/neopdf/neopdf-go/knots"
