// Package container implements the framed, versioned, multi-member
// archive format: a single shared MetaData header, an offset table
// for random access, and one size-prefixed member payload per PDF
// member, the whole stream wrapped in LZ4 frame compression.
package container // import "github.com/neopdf/neopdf-go/container"
