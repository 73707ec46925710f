package boxlcp

// Small BLAS-level-1-style kernels the dense PGS variant is built from,
// in the spirit of curioloop-optimizer's hand-written daxpy/ddot (this
// package has no n*n>1000 ambitions, so there is no stride/unrolling
// here, just the same split-by-shape of the computation).
//
// Every kernel writes into a caller-supplied dst rather than allocating
// its own result: these run once per PGS sweep, up to Option.MaxIteration
// times per solve, and spec §5 rules out allocation in that loop. Callers
// own dst's backing storage (see Solver's sweepZ scratch field) and grow
// it once per problem size, the same discipline prevX/normA/normB follow.

// matVecStrictUpper computes dst = strictly_upper(a) * x for an n*n Dense
// a. dst must have length a.Rows() and may not alias x.
func matVecStrictUpper(a *Dense, x, dst []float64) {
	n := a.Rows()
	for i := 0; i < n; i++ {
		row := a.Row(i)
		var sum float64
		for j := i + 1; j < n; j++ {
			sum += row[j] * x[j]
		}
		dst[i] = sum
	}
}

// matVecStrictLower computes dst = strictly_lower(a) * x. dst must have
// length a.Rows() and may not alias x.
func matVecStrictLower(a *Dense, x, dst []float64) {
	n := a.Rows()
	for i := 0; i < n; i++ {
		row := a.Row(i)
		var sum float64
		for j := 0; j < i; j++ {
			sum += row[j] * x[j]
		}
		dst[i] = sum
	}
}

// solveLower solves lower(a)*dst = z in place into dst, where lower(a)
// includes a's diagonal. dst may alias z (forward substitution only ever
// reads dst[j] for j < i, already written by the time index i is
// computed) but must not alias any other scratch the caller still needs.
func solveLower(a *Dense, z, dst []float64) {
	n := a.Rows()
	for i := 0; i < n; i++ {
		row := a.Row(i)
		sum := z[i]
		for j := 0; j < i; j++ {
			sum -= row[j] * dst[j]
		}
		dst[i] = sum / row[i]
	}
}

// solveUnitLower solves unit_lower(a)*dst = z, a's diagonal treated as 1.
func solveUnitLower(a *Dense, z, dst []float64) {
	n := a.Rows()
	for i := 0; i < n; i++ {
		row := a.Row(i)
		sum := z[i]
		for j := 0; j < i; j++ {
			sum -= row[j] * dst[j]
		}
		dst[i] = sum
	}
}

// solveUpper solves upper(a)*dst = z, including a's diagonal.
func solveUpper(a *Dense, z, dst []float64) {
	n := a.Rows()
	for i := n - 1; i >= 0; i-- {
		row := a.Row(i)
		sum := z[i]
		for j := i + 1; j < n; j++ {
			sum -= row[j] * dst[j]
		}
		dst[i] = sum / row[i]
	}
}

// solveUnitUpper solves unit_upper(a)*dst = z, a's diagonal treated as 1.
func solveUnitUpper(a *Dense, z, dst []float64) {
	n := a.Rows()
	for i := n - 1; i >= 0; i-- {
		row := a.Row(i)
		sum := z[i]
		for j := i + 1; j < n; j++ {
			sum -= row[j] * dst[j]
		}
		dst[i] = sum
	}
}
