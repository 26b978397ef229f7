package container

import (
	"io"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/metadata"
)

// Iterator decompresses an archive once and yields its members in
// order, decoding one at a time and never retaining prior members.
type Iterator struct {
	meta   metadata.MetaData
	header *header
	next   int
}

// NewIterator decompresses path once and builds an Iterator over it.
func NewIterator(path string) (*Iterator, error) {
	raw, err := decompressFile(path)
	if err != nil {
		return nil, err
	}
	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	var meta metadata.MetaData
	if err := meta.UnmarshalBinary(h.metaBytes); err != nil {
		return nil, err
	}
	return &Iterator{meta: meta, header: h}, nil
}

// Metadata returns the archive's shared descriptive record.
func (it *Iterator) Metadata() *metadata.MetaData { return &it.meta }

// SizeHint returns the exact number of members remaining.
func (it *Iterator) SizeHint() int { return len(it.header.offsets) - it.next }

// Next decodes and returns the next member, or io.EOF once the
// archive is exhausted.
func (it *Iterator) Next() (*grid.GridArray, error) {
	if it.next >= len(it.header.offsets) {
		return nil, io.EOF
	}
	payload, err := it.header.member(it.next)
	if err != nil {
		return nil, err
	}
	it.next++
	return grid.UnmarshalGridArray(payload)
}
