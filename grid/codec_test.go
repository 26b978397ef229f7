package grid

import (
	"math"
	"testing"
)

func TestGridArrayMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	xs := Axis{1e-5, 1e-3, 1e-1, 1}
	q2s := Axis{1, 10, 100, 1000}
	pids := []int{21, 2}
	values := make([]float64, 0, len(pids)*len(xs)*len(q2s))
	for _, pid := range pids {
		for _, x := range xs {
			for _, q2 := range q2s {
				values = append(values, float64(pid)+math.Log(x)+math.Log(q2))
			}
		}
	}
	sg, err := NewSubGrid(Axis{1}, Axis{1}, Axis{1}, xs, q2s, len(pids), values)
	if err != nil {
		t.Fatalf("NewSubGrid: %v", err)
	}
	want, err := NewGridArray(pids, []*SubGrid{sg})
	if err != nil {
		t.Fatalf("NewGridArray: %v", err)
	}

	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	got, err := UnmarshalGridArray(data)
	if err != nil {
		t.Fatalf("UnmarshalGridArray: %v", err)
	}

	if len(got.Pids) != len(want.Pids) || got.Pids[0] != want.Pids[0] || got.Pids[1] != want.Pids[1] {
		t.Fatalf("Pids = %v, want %v", got.Pids, want.Pids)
	}
	if len(got.Subgrids) != 1 {
		t.Fatalf("Subgrids = %d, want 1", len(got.Subgrids))
	}
	gotSg, wantSg := got.Subgrids[0], want.Subgrids[0]
	for i := range wantSg.Xs {
		if gotSg.Xs[i] != wantSg.Xs[i] {
			t.Errorf("Xs[%d] = %g, want %g", i, gotSg.Xs[i], wantSg.Xs[i])
		}
	}
	for i := 0; i < gotSg.Values.Len(); i++ {
		if gotSg.Values.RawData()[i] != wantSg.Values.RawData()[i] {
			t.Errorf("Values.RawData()[%d] = %g, want %g", i, gotSg.Values.RawData()[i], wantSg.Values.RawData()[i])
		}
	}
}

func TestUnmarshalGridArrayRejectsBadMagic(t *testing.T) {
	t.Parallel()
	sg, err := NewSubGrid(Axis{1}, Axis{1}, Axis{1}, Axis{1e-3, 1}, Axis{1, 100}, 1, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewSubGrid: %v", err)
	}
	ga, err := NewGridArray([]int{21}, []*SubGrid{sg})
	if err != nil {
		t.Fatalf("NewGridArray: %v", err)
	}
	data, err := ga.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	data[0] ^= 0xff
	if _, err := UnmarshalGridArray(data); err == nil {
		t.Fatal("UnmarshalGridArray with corrupted magic: expected error")
	}
}
