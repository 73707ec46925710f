package boxlcp

// normalizeDenseInto writes a's row-normalized copy (each row divided by
// its own diagonal, so the result's diagonal is all ones) into the
// caller-owned dst, along with the matching b̂ = b / diag(a) into nb. This
// is the precomputation the n < MaxIteration branch of SolveDense
// amortizes across iterations; writing into solver-owned scratch rather
// than allocating keeps a warmed-up Solver's dense path allocation-free.
//
// active, when non-nil, lists the rows that are not degeneracy-pinned;
// rows left out of it are copied verbatim instead of divided, since their
// near-zero diagonal would blow up the division and the resulting row is
// never read again (the sweep skips it entirely).
func normalizeDenseInto(a *Dense, b []float64, dst *Dense, nb []float64, active []int) {
	n := a.Rows()
	skip := make([]bool, 0)
	if active != nil {
		skip = make([]bool, n)
		for i := range skip {
			skip[i] = true
		}
		for _, i := range active {
			skip[i] = false
		}
	}
	for i := 0; i < n; i++ {
		src := a.Row(i)
		row := dst.Row(i)
		if len(skip) > 0 && skip[i] {
			copy(row, src)
			nb[i] = b[i]
			continue
		}
		d := a.At(i, i)
		for j := 0; j < n; j++ {
			row[j] = src[j] / d
		}
		nb[i] = b[i] / d
	}
}

// SweepForward performs one forward Gauss-Seidel sweep against the full
// (non-unit) lower triangle of a: z = b - strictly_upper(a)*x, then
// x = lower(a)^-1 * z. (DESIGN.md records why this uses +b rather than
// the literal -b the Eigen source this was read from appears to use: the
// negated form cannot reproduce spec.md's own worked scenarios on a
// diagonal A, where it has no off-diagonal term to correct the sign.)
//
// z is caller-supplied scratch of length a.Rows(), reused across sweeps
// so the call allocates nothing; it may not alias x or b.
func SweepForward(a *Dense, x, b, z []float64) {
	matVecStrictUpper(a, x, z)
	for i := range z {
		z[i] = b[i] - z[i]
	}
	solveLower(a, z, x)
}

// SweepForwardNormalized is SweepForward against a row-normalized matrix
// (unit diagonal assumed, so the triangular solve skips n divisions).
func SweepForwardNormalized(a *Dense, x, b, z []float64) {
	matVecStrictUpper(a, x, z)
	for i := range z {
		z[i] = b[i] - z[i]
	}
	solveUnitLower(a, z, x)
}

// SweepBackward is SweepForward's mirror image, offered as a primitive for
// callers building symmetric Gauss-Seidel out of forward+backward half
// sweeps. The public SolveDense entry point only ever uses the forward
// sweeps; SweepBackward/SweepBackwardNormalized exist so a caller isn't
// forced to reimplement the other half.
func SweepBackward(a *Dense, x, b, z []float64) {
	matVecStrictLower(a, x, z)
	for i := range z {
		z[i] = b[i] - z[i]
	}
	solveUpper(a, z, x)
}

// SweepBackwardNormalized is SweepBackward against a row-normalized matrix.
func SweepBackwardNormalized(a *Dense, x, b, z []float64) {
	matVecStrictLower(a, x, z)
	for i := range z {
		z[i] = b[i] - z[i]
	}
	solveUnitUpper(a, z, x)
}

// clampVec projects x into [lo, hi] componentwise in place.
func clampVec(x, lo, hi []float64) {
	for i := range x {
		x[i] = clampBox(x[i], lo[i], hi[i])
	}
}

// hasFriction reports whether findex couples any row to an earlier one.
// A nil findex, or one that is all -1, means the plain box [lo, hi]
// applies everywhere and the vectorized triangular-solve sweeps can be
// used as-is.
func hasFriction(findex []int) bool {
	for _, fi := range findex {
		if fi >= 0 {
			return true
		}
	}
	return false
}

// sweepRowwise performs one forward Gauss-Seidel sweep over active (rather
// than necessarily 0..n-1) row by row, projecting each row into its
// effective box immediately after computing it (rather than batching the
// whole sweep through a triangular solve and clamping afterward). Rows
// left out of active are skipped entirely, which is what lets the
// degeneracy-pinned rows keep contributing a harmless zero to every other
// row's sum without their own near-singular diagonal ever being divided
// by.
//
// Filtering by active is also required whenever findex is present: row
// i's friction bound reads x[findex[i]], and findex[i] < i must see that
// row's *projected* value, which the batched matVecStrictUpper+solveLower
// formulation of SweepForward has no way to thread through mid-solve. This
// is why the dense/Eigen-style overload this package's triangular-solve
// kernels are modeled on leaves its frictionIndex parameter unused: the
// vectorized expression-template form and per-row friction projection are
// fundamentally at odds. Since this package's own scenario S4 exercises
// friction coupling through the dense entry point, this row-by-row
// fallback restores it rather than silently dropping it (see DESIGN.md).
func sweepRowwise(a *Dense, x, b, lo, hi []float64, findex []int, active []int, unit bool) {
	n := a.Rows()
	for _, i := range active {
		row := a.Row(i)
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= row[j] * x[j]
		}
		for j := i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		newX := sum
		if !unit {
			newX /= row[i]
		}

		effLo, effHi := lo[i], hi[i]
		if findex != nil && findex[i] >= 0 {
			hiTmp := hi[i] * x[findex[i]]
			effLo, effHi = -hiTmp, hiTmp
		}
		x[i] = clampBox(newX, effLo, effHi)
	}
}

// anyBelowThreshold reports whether any |delta[i]| <= threshold. This is
// the dense variant's early-termination predicate, and it is deliberately
// an "any" rather than an "all" (open question 1): the source this
// package is modeled on tests x.cwiseAbs() <= threshold and calls .any(),
// which terminates on the first coordinate to stop moving rather than
// waiting for every coordinate to settle. That reads like a bug next to
// the raw variant's "every active index" logic, but changing it would
// change observable output on every multi-variable dense-path problem, so
// it is preserved.
func anyBelowThreshold(x, prev []float64, threshold float64) bool {
	for i := range x {
		d := x[i] - prev[i]
		if d < 0 {
			d = -d
		}
		if d <= threshold {
			return true
		}
	}
	return false
}

// scratchFor resizes and returns the Solver's reusable prevX buffer,
// keeping the dense iteration loops free of per-call allocation once a
// Solver has warmed up to a given problem size.
func (s *Solver) scratchFor(n int) []float64 {
	if cap(s.prevX) < n {
		s.prevX = make([]float64, n)
	}
	return s.prevX[:n]
}

// scratchZ resizes and returns the Solver's reusable sweepZ buffer, the
// destination SweepForward(Normalized) write their strictly-upper matvec
// result into. Separate from prevX/denseActive/denseAll since a single
// sweep iteration needs all of them live at once.
func (s *Solver) scratchZ(n int) []float64 {
	if cap(s.sweepZ) < n {
		s.sweepZ = make([]float64, n)
	}
	return s.sweepZ[:n]
}

// solveDenseNormalized is the n < MaxIteration branch of SolveDense: a's
// diagonal-normalized copy is amortized across iterations so the inner
// loop divides nothing. When findex couples any row to an earlier one, or
// active leaves out a degeneracy-pinned row, the per-row sweep is used
// instead of the batched triangular solve (see sweepRowwise); otherwise
// the vectorized path applies the plain [lo, hi] clamp to every row.
// active is nil when every row participates.
func (s *Solver) solveDenseNormalized(a *Dense, x, b, lo, hi []float64, findex, active []int) Result {
	n := a.Rows()
	if s.normA == nil || cap(s.normA.data) < n*n {
		s.normA = NewDense(n, n)
	} else {
		s.normA.rows, s.normA.cols = n, n
	}
	na := s.normA
	if cap(s.normB) < n {
		s.normB = make([]float64, n)
	}
	nb := s.normB[:n]
	normalizeDenseInto(a, b, na, nb, active)
	prev := s.scratchFor(n)

	filtered := active != nil || hasFriction(findex)
	var sweepActive []int
	if filtered {
		sweepActive = s.activeOrAll(active, n)
	}

	for iter := 0; iter < s.Option.MaxIteration; iter++ {
		copy(prev, x)
		if filtered {
			sweepRowwise(na, x, nb, lo, hi, findex, sweepActive, true)
		} else {
			SweepForwardNormalized(na, x, nb, s.scratchZ(n))
			clampVec(x, lo, hi)
		}
		if anyBelowThreshold(x, prev, s.Option.DeltaXThreshold) {
			return Result{Iterations: iter + 1, Converged: true}
		}
	}
	return Result{Iterations: s.Option.MaxIteration, Converged: false}
}

// solveDenseRaw is the n >= MaxIteration branch of SolveDense: sweeping
// against the raw (un-normalized) lower triangle directly, skipping the
// O(n^2) normalization pass since there are too few iterations left to
// amortize it.
func (s *Solver) solveDenseRaw(a *Dense, x, b, lo, hi []float64, findex, active []int) Result {
	n := a.Rows()
	prev := s.scratchFor(n)
	filtered := active != nil || hasFriction(findex)
	var sweepActive []int
	if filtered {
		sweepActive = s.activeOrAll(active, n)
	}

	for iter := 0; iter < s.Option.MaxIteration; iter++ {
		copy(prev, x)
		if filtered {
			sweepRowwise(a, x, b, lo, hi, findex, sweepActive, false)
		} else {
			SweepForward(a, x, b, s.scratchZ(n))
			clampVec(x, lo, hi)
		}
		if anyBelowThreshold(x, prev, s.Option.DeltaXThreshold) {
			return Result{Iterations: iter + 1, Converged: true}
		}
	}
	return Result{Iterations: s.Option.MaxIteration, Converged: false}
}

// activeOrAll returns active unchanged when non-nil, or a 0..n-1 identity
// list built into the solver's own scratch when every row participates
// but a []int is still needed (the friction-only, no-degeneracy case).
func (s *Solver) activeOrAll(active []int, n int) []int {
	if active != nil {
		return active
	}
	if cap(s.denseAll) < n {
		s.denseAll = make([]int, n)
	}
	all := s.denseAll[:n]
	for i := range all {
		all[i] = i
	}
	return all
}
