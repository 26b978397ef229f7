package grid

// Tensor is a dense, row-major, N-dimensional array of float64
// values. gonum's mat.Dense is strictly 2-D; Tensor generalises the
// same raw-slice-plus-stride representation to the SubGrid's 6-D
// logical shape [N_A, N_αs, N_pid, N_kT, N_x, N_Q²], matching mat.Dense's
// own internal layout (a flat Data slice addressed through per-axis
// strides) rather than a slice-of-slices.
type Tensor struct {
	dims    []int
	strides []int
	data    []float64
}

// NewTensor allocates a Tensor of the given shape, zero-filled, or
// backed by data if data is non-nil. It panics if len(data) does not
// match the product of dims.
func NewTensor(dims []int, data []float64) *Tensor {
	n := 1
	for _, d := range dims {
		n *= d
	}
	if data == nil {
		data = make([]float64, n)
	} else if len(data) != n {
		panic("grid: data length does not match tensor shape")
	}
	t := &Tensor{
		dims:    append([]int(nil), dims...),
		strides: make([]int, len(dims)),
		data:    data,
	}
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		t.strides[i] = stride
		stride *= dims[i]
	}
	return t
}

// Dims returns the tensor's shape.
func (t *Tensor) Dims() []int { return t.dims }

// Len returns the number of elements in the tensor.
func (t *Tensor) Len() int { return len(t.data) }

// RawData returns the tensor's backing row-major storage. Callers must
// not retain it past the tensor's lifetime if they mutate it.
func (t *Tensor) RawData() []float64 { return t.data }

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.dims) {
		panic("grid: index arity does not match tensor rank")
	}
	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= t.dims[i] {
			panic("grid: index out of range")
		}
		off += ix * t.strides[i]
	}
	return off
}

// At returns the element at idx, a full-rank multi-index. It panics on
// rank mismatch or an out-of-range index.
func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set stores v at idx, a full-rank multi-index. It panics on rank
// mismatch or an out-of-range index.
func (t *Tensor) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

// Slice extracts a dense sub-tensor over the axes in keep (in the
// given order), holding every other axis fixed at the corresponding
// index in fixed (same length and axis order as t.dims, entries at
// positions in keep are ignored). This is the "active axes" view an
// interpolation strategy operates on: e.g. for the 2-D config, keep =
// [x-axis, Q²-axis] and fixed pins nucleon/αs/kT/pid indices.
func (t *Tensor) Slice(keep []int, fixed []int) *Tensor {
	if len(fixed) != len(t.dims) {
		panic("grid: fixed index arity does not match tensor rank")
	}
	outDims := make([]int, len(keep))
	for i, ax := range keep {
		outDims[i] = t.dims[ax]
	}
	out := NewTensor(outDims, nil)
	idx := append([]int(nil), fixed...)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(keep) {
			outIdx := make([]int, len(keep))
			for i, ax := range keep {
				outIdx[i] = idx[ax]
			}
			out.Set(t.At(idx...), outIdx...)
			return
		}
		ax := keep[pos]
		for i := 0; i < t.dims[ax]; i++ {
			idx[ax] = i
			walk(pos + 1)
		}
	}
	walk(0)
	return out
}
