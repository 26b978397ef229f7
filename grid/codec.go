package grid

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/neopdf/neopdf-go/pdferr"
)

// gridArrayVersion is the on-disk codec version for GridArray member
// payloads, following the same magic-plus-version header convention
// as package metadata's MetaData codec.
const gridArrayVersion uint32 = 1

var gridArrayMagic = [4]byte{'N', 'P', 'D', 'G'}

// MarshalBinary encodes ga into the self-describing, versioned little-
// endian form UnmarshalGridArray reads back. Each subgrid is written
// as its five axes, its flavor count and its raw tensor data, in the
// same order NewSubGrid expects them.
func (ga *GridArray) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(gridArrayMagic[:])
	binary.Write(buf, binary.LittleEndian, gridArrayVersion)

	writeInt64(buf, int64(len(ga.Pids)))
	for _, p := range ga.Pids {
		writeInt64(buf, int64(p))
	}

	writeInt64(buf, int64(len(ga.Subgrids)))
	for _, sg := range ga.Subgrids {
		writeFloatSlice(buf, sg.Nucleons)
		writeFloatSlice(buf, sg.Alphas)
		writeFloatSlice(buf, sg.Kts)
		writeFloatSlice(buf, sg.Xs)
		writeFloatSlice(buf, sg.Q2s)
		writeInt64(buf, int64(sg.NPID))
		writeFloatSlice(buf, sg.Values.RawData())
	}
	return buf.Bytes(), nil
}

// UnmarshalGridArray decodes data produced by GridArray.MarshalBinary.
// It fails with UnsupportedVersionError on a version mismatch, and
// CorruptError on a truncated or malformed payload.
func UnmarshalGridArray(data []byte) (*GridArray, error) {
	r := bytes.NewReader(data)
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, &pdferr.CorruptError{Reason: "gridarray: truncated header"}
	}
	if magic != gridArrayMagic {
		return nil, &pdferr.CorruptError{Reason: "gridarray: bad magic"}
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, &pdferr.CorruptError{Reason: "gridarray: truncated version"}
	}
	if version != gridArrayVersion {
		return nil, &pdferr.UnsupportedVersionError{Got: version, Want: gridArrayVersion}
	}

	nPids, err := readInt64Grid(r)
	if err != nil {
		return nil, err
	}
	pids := make([]int, nPids)
	for i := range pids {
		v, err := readInt64Grid(r)
		if err != nil {
			return nil, err
		}
		pids[i] = int(v)
	}

	nSubgrids, err := readInt64Grid(r)
	if err != nil {
		return nil, err
	}
	subgrids := make([]*SubGrid, nSubgrids)
	for i := range subgrids {
		nucleons, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		alphas, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		kts, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		xs, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		q2s, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		nPID, err := readInt64Grid(r)
		if err != nil {
			return nil, err
		}
		values, err := readFloatSlice(r)
		if err != nil {
			return nil, err
		}
		sg, err := NewSubGrid(nucleons, alphas, kts, xs, q2s, int(nPID), values)
		if err != nil {
			return nil, err
		}
		subgrids[i] = sg
	}
	return NewGridArray(pids, subgrids)
}

func writeInt64(buf *bytes.Buffer, v int64) { binary.Write(buf, binary.LittleEndian, v) }

func writeFloatSlice(buf *bytes.Buffer, v []float64) {
	writeInt64(buf, int64(len(v)))
	for _, x := range v {
		binary.Write(buf, binary.LittleEndian, x)
	}
}

func readInt64Grid(r *bytes.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, &pdferr.CorruptError{Reason: "gridarray: truncated payload"}
	}
	return v, nil
}

func readFloatSlice(r *bytes.Reader) ([]float64, error) {
	n, err := readInt64Grid(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &pdferr.CorruptError{Reason: "gridarray: negative slice length"}
	}
	out := make([]float64, n)
	for i := range out {
		if err := binary.Read(r, binary.LittleEndian, &out[i]); err != nil {
			return nil, &pdferr.CorruptError{Reason: "gridarray: truncated float slice"}
		}
	}
	return out, nil
}
