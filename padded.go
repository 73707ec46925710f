package boxlcp

// simdWidth is the row-padding granularity. It is a performance detail
// leaked from the kernel this package's algorithm was lifted from; nothing
// observable depends on its exact value as long as Pad and Padded's
// accessors agree.
const simdWidth = 4

// Pad rounds n up to the next multiple of simdWidth. Pad is monotonically
// non-decreasing and Pad(n) >= n for all n >= 0.
func Pad(n int) int {
	if n <= 0 {
		return 0
	}
	r := n % simdWidth
	if r == 0 {
		return n
	}
	return n + (simdWidth - r)
}

// Padded is a dense, row-major, padded n*n matrix. Element (i, j) lives at
// index i*Stride+j; the bytes beyond column n of each row are addressable
// but otherwise unused. Padded is the layout the raw solve entry point
// ([Solver.Solve]) requires and is free to mutate in place.
type Padded struct {
	N      int
	Stride int
	Data   []float64
}

// NewPadded allocates a zeroed Padded matrix for an n*n problem.
func NewPadded(n int) *Padded {
	stride := Pad(n)
	return &Padded{N: n, Stride: stride, Data: make([]float64, n*stride)}
}

// At returns A[i][j].
func (m *Padded) At(i, j int) float64 {
	return m.Data[i*m.Stride+j]
}

// Set assigns A[i][j] = v.
func (m *Padded) Set(i, j int, v float64) {
	m.Data[i*m.Stride+j] = v
}

// Row returns the backing slice for row i, length m.Stride (including pad
// columns). Callers that only read the first m.N entries are safe; writing
// past column N-1 is harmless but pointless.
func (m *Padded) Row(i int) []float64 {
	return m.Data[i*m.Stride : (i+1)*m.Stride]
}

// Diag returns A[i][i].
func (m *Padded) Diag(i int) float64 {
	return m.Data[i*m.Stride+i]
}

// FromDense copies a value-typed Dense matrix into a fresh Padded one, the
// layout conversion a caller needs to feed [Dense]-built problems into the
// raw solve path.
func FromDense(d *Dense) *Padded {
	p := NewPadded(d.Rows())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			p.Set(i, j, d.At(i, j))
		}
	}
	return p
}
