package boxlcp

import "fmt"

// Dense is a value-typed, unpadded row-major matrix used by the dense
// solve entry point ([Solver.SolveDense]). Unlike [Padded], a Dense matrix
// the caller passes in is never mutated by the solver; a normalized copy
// is kept in the solver's own scratch instead.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zeroed rows*cols matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// DenseFromRows builds a Dense matrix from row-major literal data, mostly
// useful in tests.
func DenseFromRows(rows [][]float64) *Dense {
	n := len(rows)
	if n == 0 {
		return &Dense{}
	}
	m := len(rows[0])
	d := NewDense(n, m)
	for i, row := range rows {
		copy(d.data[i*m:(i+1)*m], row)
	}
	return d
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns d[i][j]. It does no bounds checking of its own, matching the
// package's no-defensive-checks-in-the-hot-path stance: an out-of-range j
// reads a neighboring row's entry, and only an index past the backing
// slice panics. Callers that need bounds safety should check Rows/Cols
// themselves.
func (d *Dense) At(i, j int) float64 {
	return d.data[i*d.cols+j]
}

// Set assigns d[i][j] = v.
func (d *Dense) Set(i, j int, v float64) {
	d.data[i*d.cols+j] = v
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)
	return out
}

// Row returns the backing slice for row i. Mutating it mutates d.
func (d *Dense) Row(i int) []float64 {
	return d.data[i*d.cols : (i+1)*d.cols]
}

func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%dx%d)", d.rows, d.cols)
}
