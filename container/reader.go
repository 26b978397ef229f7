package container

import (
	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/metadata"
)

// ReadMetadata decompresses path and decodes only its shared MetaData
// header, without touching any member payload.
func ReadMetadata(path string) (*metadata.MetaData, error) {
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
	return &meta, nil
}

// ReadAll eagerly decompresses path and decodes MetaData and every
// member.
func ReadAll(path string) (*metadata.MetaData, []*grid.GridArray, error) {
	raw, err := decompressFile(path)
	if err != nil {
		return nil, nil, err
	}
	h, err := parseHeader(raw)
	if err != nil {
		return nil, nil, err
	}
	var meta metadata.MetaData
	if err := meta.UnmarshalBinary(h.metaBytes); err != nil {
		return nil, nil, err
	}
	members := make([]*grid.GridArray, len(h.offsets))
	for i := range members {
		payload, err := h.member(i)
		if err != nil {
			return nil, nil, err
		}
		ga, err := grid.UnmarshalGridArray(payload)
		if err != nil {
			return nil, nil, err
		}
		members[i] = ga
	}
	return &meta, members, nil
}

// Reader decompresses an archive once and exposes random access to
// its members by index. The underlying decompressed byte buffer is
// read-only, so concurrent calls to Load are safe: each constructs a
// private cursor over the same buffer.
type Reader struct {
	meta   metadata.MetaData
	header *header
}

// Open decompresses path once and builds a Reader over it.
func Open(path string) (*Reader, error) {
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
	return &Reader{meta: meta, header: h}, nil
}

// Metadata returns the archive's shared descriptive record.
func (r *Reader) Metadata() *metadata.MetaData { return &r.meta }

// Len returns the number of members in the archive.
func (r *Reader) Len() int { return len(r.header.offsets) }

// Load decodes and returns the i-th member.
func (r *Reader) Load(i int) (*grid.GridArray, error) {
	payload, err := r.header.member(i)
	if err != nil {
		return nil, err
	}
	return grid.UnmarshalGridArray(payload)
}
