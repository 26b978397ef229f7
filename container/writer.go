package container

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/sirupsen/logrus"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/metadata"
	"github.com/neopdf/neopdf-go/pdferr"
)

// Write serialises meta and members to path as an LZ4-framed archive
// in the layout:
//
//	metadata_size   u64
//	metadata_bytes  metadata_size
//	count           u64
//	offset_table_size u64 (= count * 8)
//	offsets         u64 * count
//	per member: payload_size u64, payload_bytes payload_size
func Write(path string, meta *metadata.MetaData, members []*grid.GridArray) error {
	metaBytes, err := meta.MarshalBinary()
	if err != nil {
		return &pdferr.IOError{Op: "encode metadata", Err: err}
	}

	payloads := make([][]byte, len(members))
	for i, m := range members {
		p, err := m.MarshalBinary()
		if err != nil {
			return &pdferr.IOError{Op: "encode member", Err: err}
		}
		payloads[i] = p
	}

	offsets := make([]uint64, len(payloads))
	var pos uint64
	for i, p := range payloads {
		offsets[i] = pos
		pos += 8 + uint64(len(p))
	}

	var raw bytes.Buffer
	writeU64(&raw, uint64(len(metaBytes)))
	raw.Write(metaBytes)
	writeU64(&raw, uint64(len(payloads)))
	writeU64(&raw, uint64(len(payloads))*8)
	for _, off := range offsets {
		writeU64(&raw, off)
	}
	for _, p := range payloads {
		writeU64(&raw, uint64(len(p)))
		raw.Write(p)
	}

	f, err := os.Create(path)
	if err != nil {
		return &pdferr.IOError{Op: "create " + path, Err: err}
	}
	defer f.Close()

	zw := lz4.NewWriter(f)
	defer zw.Close()

	n, err := zw.Write(raw.Bytes())
	if err != nil {
		return &pdferr.IOError{Op: "write " + path, Err: err}
	}
	logrus.Debugf("container: wrote %d members (%d raw bytes) to %s", len(members), n, path)
	return nil
}

func writeU64(buf *bytes.Buffer, v uint64) { binary.Write(buf, binary.LittleEndian, v) }
