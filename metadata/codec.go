package metadata

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/neopdf/neopdf-go/grid"
	"github.com/neopdf/neopdf-go/pdferr"
)

// metadataVersion is the current on-disk codec version for MetaData,
// following mat.Dense's MarshalBinary convention of a fixed magic
// plus version header ahead of the variable-length payload.
const metadataVersion uint32 = 1

var metadataMagic = [4]byte{'N', 'P', 'D', 'M'}

// MarshalBinary encodes m into the self-describing, versioned little-
// endian form read by UnmarshalBinary.
func (m MetaData) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(metadataMagic[:])
	binary.Write(buf, binary.LittleEndian, metadataVersion)

	writeString(buf, m.SetName)
	writeInt64(buf, int64(m.SetIndex))
	writeInt64(buf, int64(m.NumMembers))

	writeRange(buf, m.NucleonRange)
	writeRange(buf, m.AlphaRange)
	writeRange(buf, m.KtRange)
	writeRange(buf, m.XRange)
	writeRange(buf, m.Q2Range)

	writeInts(buf, m.Flavors)

	writeInt64(buf, int64(len(m.AlphaSKnots)))
	for _, k := range m.AlphaSKnots {
		binary.Write(buf, binary.LittleEndian, k.Q)
		binary.Write(buf, binary.LittleEndian, k.Alphas)
	}

	writeString(buf, m.InterpolatorTag)
	writeString(buf, m.SetType)
	writeInt64(buf, int64(m.ParticleID))
	writeInt64(buf, int64(m.QCDOrder))

	writeFloats(buf, m.QuarkMasses)
	writeFloats(buf, m.BosonMasses)
	writeString(buf, m.FlavorScheme)

	writeString(buf, m.CodeVersion)
	writeString(buf, m.GitVersion)

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into m. It
// fails with UnsupportedVersionError if the version tag does not
// match, and CorruptError if the payload is truncated or malformed.
func (m *MetaData) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return &pdferr.CorruptError{Reason: "metadata: truncated header"}
	}
	if magic != metadataMagic {
		return &pdferr.CorruptError{Reason: "metadata: bad magic"}
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return &pdferr.CorruptError{Reason: "metadata: truncated version"}
	}
	if version != metadataVersion {
		return &pdferr.UnsupportedVersionError{Got: version, Want: metadataVersion}
	}

	var err error
	if m.SetName, err = readString(r); err != nil {
		return err
	}
	var i64 int64
	if i64, err = readInt64(r); err != nil {
		return err
	}
	m.SetIndex = int(i64)
	if i64, err = readInt64(r); err != nil {
		return err
	}
	m.NumMembers = int(i64)

	for _, dst := range []*grid.ParamRange{&m.NucleonRange, &m.AlphaRange, &m.KtRange, &m.XRange, &m.Q2Range} {
		if *dst, err = readRange(r); err != nil {
			return err
		}
	}

	if m.Flavors, err = readInts(r); err != nil {
		return err
	}

	var n int64
	if n, err = readInt64(r); err != nil {
		return err
	}
	if n < 0 {
		return &pdferr.CorruptError{Reason: "metadata: negative alphas knot count"}
	}
	m.AlphaSKnots = make([]QAlphaKnot, n)
	for i := range m.AlphaSKnots {
		if err := binary.Read(r, binary.LittleEndian, &m.AlphaSKnots[i].Q); err != nil {
			return &pdferr.CorruptError{Reason: "metadata: truncated alphas knots"}
		}
		if err := binary.Read(r, binary.LittleEndian, &m.AlphaSKnots[i].Alphas); err != nil {
			return &pdferr.CorruptError{Reason: "metadata: truncated alphas knots"}
		}
	}

	if m.InterpolatorTag, err = readString(r); err != nil {
		return err
	}
	if m.SetType, err = readString(r); err != nil {
		return err
	}
	if i64, err = readInt64(r); err != nil {
		return err
	}
	m.ParticleID = int(i64)
	if i64, err = readInt64(r); err != nil {
		return err
	}
	m.QCDOrder = int(i64)

	if m.QuarkMasses, err = readFloats(r); err != nil {
		return err
	}
	if m.BosonMasses, err = readFloats(r); err != nil {
		return err
	}
	if m.FlavorScheme, err = readString(r); err != nil {
		return err
	}
	if m.CodeVersion, err = readString(r); err != nil {
		return err
	}
	if m.GitVersion, err = readString(r); err != nil {
		return err
	}
	return nil
}

func writeInt64(buf *bytes.Buffer, v int64) { binary.Write(buf, binary.LittleEndian, v) }

func writeString(buf *bytes.Buffer, s string) {
	writeInt64(buf, int64(len(s)))
	buf.WriteString(s)
}

func writeInts(buf *bytes.Buffer, v []int) {
	writeInt64(buf, int64(len(v)))
	for _, x := range v {
		writeInt64(buf, int64(x))
	}
}

func writeFloats(buf *bytes.Buffer, v []float64) {
	writeInt64(buf, int64(len(v)))
	for _, x := range v {
		binary.Write(buf, binary.LittleEndian, x)
	}
}

func writeRange(buf *bytes.Buffer, r grid.ParamRange) {
	binary.Write(buf, binary.LittleEndian, r.Min)
	binary.Write(buf, binary.LittleEndian, r.Max)
}

func readInt64(r *bytes.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, &pdferr.CorruptError{Reason: "metadata: truncated payload"}
	}
	return v, nil
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readInt64(r)
	if err != nil {
		return "", err
	}
	if n < 0 || n > int64(r.Len()) {
		return "", &pdferr.CorruptError{Reason: "metadata: invalid string length"}
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", &pdferr.CorruptError{Reason: "metadata: truncated string"}
	}
	return string(b), nil
}

func readInts(r *bytes.Reader) ([]int, error) {
	n, err := readInt64(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &pdferr.CorruptError{Reason: "metadata: negative slice length"}
	}
	out := make([]int, n)
	for i := range out {
		v, err := readInt64(r)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}

func readFloats(r *bytes.Reader) ([]float64, error) {
	n, err := readInt64(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &pdferr.CorruptError{Reason: "metadata: negative slice length"}
	}
	out := make([]float64, n)
	for i := range out {
		if err := binary.Read(r, binary.LittleEndian, &out[i]); err != nil {
			return nil, &pdferr.CorruptError{Reason: "metadata: truncated float slice"}
		}
	}
	return out, nil
}

func readRange(r *bytes.Reader) (grid.ParamRange, error) {
	var rg grid.ParamRange
	if err := binary.Read(r, binary.LittleEndian, &rg.Min); err != nil {
		return rg, &pdferr.CorruptError{Reason: "metadata: truncated range"}
	}
	if err := binary.Read(r, binary.LittleEndian, &rg.Max); err != nil {
		return rg, &pdferr.CorruptError{Reason: "metadata: truncated range"}
	}
	return rg, nil
}
