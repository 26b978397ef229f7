// Package metadata describes the shared, per-archive descriptive
// record carried once per PDF set and referenced by every member
// decoded from the same container.
package metadata // import "github.com/neopdf/neopdf-go/metadata"
