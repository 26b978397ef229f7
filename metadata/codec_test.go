package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neopdf/neopdf-go/grid"
)

func sampleMetaData() MetaData {
	return MetaData{
		SetName:      "NNPDF40_nnlo_as_01180",
		SetIndex:     331100,
		NumMembers:   101,
		NucleonRange: grid.ParamRange{Min: 1, Max: 1},
		AlphaRange:   grid.ParamRange{Min: 0.118, Max: 0.118},
		KtRange:      grid.ParamRange{Min: 0, Max: 0},
		XRange:       grid.ParamRange{Min: 1e-9, Max: 1},
		Q2Range:      grid.ParamRange{Min: 1.65 * 1.65, Max: 1e8},
		Flavors:      []int{-5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 21},
		AlphaSKnots: []QAlphaKnot{
			{Q: 1.65, Alphas: 0.3303},
			{Q: 91.1876, Alphas: 0.118},
		},
		InterpolatorTag: "LogBicubic",
		SetType:         "PDF",
		ParticleID:      2212,
		QCDOrder:        2,
		QuarkMasses:     []float64{0, 0, 0, 1.51, 4.92, 172.5},
		BosonMasses:     []float64{80.398, 91.1876},
		FlavorScheme:    "variable",
		CodeVersion:     "1.0.0",
		GitVersion:      "abcdef0",
	}
}

func TestMetaDataRoundTrip(t *testing.T) {
	t.Parallel()
	want := sampleMetaData()
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got MetaData
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMetaDataUnmarshalRejectsBadMagic(t *testing.T) {
	t.Parallel()
	data, err := sampleMetaData().MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	data[0] ^= 0xff
	var got MetaData
	if err := got.UnmarshalBinary(data); err == nil {
		t.Fatal("UnmarshalBinary with corrupted magic: expected error")
	}
}

func TestMetaDataUnmarshalRejectsUnsupportedVersion(t *testing.T) {
	t.Parallel()
	data, err := sampleMetaData().MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	// Version is the uint32 immediately after the 4-byte magic.
	data[4] = 0xff
	var got MetaData
	if err := got.UnmarshalBinary(data); err == nil {
		t.Fatal("UnmarshalBinary with unsupported version: expected error")
	}
}

func TestMetaDataUnmarshalRejectsTruncated(t *testing.T) {
	t.Parallel()
	data, err := sampleMetaData().MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got MetaData
	if err := got.UnmarshalBinary(data[:len(data)-10]); err == nil {
		t.Fatal("UnmarshalBinary with truncated payload: expected error")
	}
}
