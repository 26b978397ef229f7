package container

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"

	"github.com/neopdf/neopdf-go/pdferr"
)

// decompressFile opens path and fully decompresses its LZ4 frame into
// memory, returning the raw container byte stream described in
// writer.go's layout comment.
func decompressFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &pdferr.IOError{Op: "open " + path, Err: err}
	}
	defer f.Close()

	raw, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, &pdferr.IOError{Op: "decompress " + path, Err: err}
	}
	return raw, nil
}

// header is the parsed framing of a decompressed container stream:
// the metadata payload, the per-member offset table (relative to
// membersStart), and the byte offset at which the members region
// begins.
type header struct {
	metaBytes   []byte
	offsets     []uint64
	membersStart int
	raw         []byte
}

func parseHeader(raw []byte) (*header, error) {
	r := bytes.NewReader(raw)

	metaSize, err := readU64(r)
	if err != nil {
		return nil, err
	}
	metaBytes := make([]byte, metaSize)
	if _, err := io.ReadFull(r, metaBytes); err != nil {
		return nil, &pdferr.CorruptError{Reason: "container: truncated metadata"}
	}

	count, err := readU64(r)
	if err != nil {
		return nil, err
	}
	tableSize, err := readU64(r)
	if err != nil {
		return nil, err
	}
	if tableSize != count*8 {
		return nil, &pdferr.CorruptError{Reason: "container: offset table size does not match member count"}
	}
	offsets := make([]uint64, count)
	for i := range offsets {
		if offsets[i], err = readU64(r); err != nil {
			return nil, err
		}
	}

	membersStart := len(raw) - r.Len()
	return &header{metaBytes: metaBytes, offsets: offsets, membersStart: membersStart, raw: raw}, nil
}

// member returns the i-th member's raw payload bytes, reading its
// size prefix at the recorded offset.
func (h *header) member(i int) ([]byte, error) {
	if i < 0 || i >= len(h.offsets) {
		return nil, &pdferr.InvalidInputError{Reason: "container: member index out of range", Value: float64(i)}
	}
	start := h.membersStart + int(h.offsets[i])
	if start+8 > len(h.raw) {
		return nil, &pdferr.CorruptError{Reason: "container: member offset out of range"}
	}
	size := binary.LittleEndian.Uint64(h.raw[start : start+8])
	payloadStart := start + 8
	payloadEnd := payloadStart + int(size)
	if payloadEnd > len(h.raw) {
		return nil, &pdferr.CorruptError{Reason: "container: member payload truncated"}
	}
	return h.raw[payloadStart:payloadEnd], nil
}

func readU64(r *bytes.Reader) (uint64, error) {
	var v uint64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, &pdferr.CorruptError{Reason: "container: truncated header"}
	}
	return v, nil
}
