package boxlcp

// Result reports what happened during a Solve/SolveDense call, without
// changing x's own contract (x always holds the best solution found,
// whether or not Converged is true). This is the structured return value
// spec.md's open question 3 asks for: the raw algorithm this package is
// modeled on returns nothing, leaving callers unable to tell "converged"
// from "hit the iteration cap" short of re-checking x themselves.
type Result struct {
	// Iterations is the number of PGS sweeps actually run, including the
	// initial filtering sweep. Always 0 for the LDLT fast path.
	Iterations int
	// Converged reports whether the may-terminate flag survived a full
	// sweep before MaxIteration was reached. False does not mean the
	// result is wrong, only that the termination tolerance was never
	// satisfied within the cap.
	Converged bool
}

// Solver holds the scratch state a sequence of Solve/SolveDense calls can
// reuse: it is cheap to construct and safe to keep around for the
// lifetime of whatever owns the constraint problem, but must not be used
// concurrently from more than one goroutine at a time (see Solve in the
// batch package for the multi-instance pattern).
type Solver struct {
	Option Option
	rnd    *RandomSource

	active []int

	// Dense-variant scratch: a normalized copy of the caller's A/b so the
	// dense entry point never mutates what it's given.
	normA *Dense
	normB []float64
	prevX []float64

	// sweepZ is the destination buffer SweepForward/SweepForwardNormalized
	// write their strictly-upper matvec result into, reused across sweeps
	// so the fast vectorized dense path allocates nothing once warmed up.
	sweepZ []float64

	// denseActive and denseAll back the degeneracy-pinned active-row list
	// SolveDense builds on each call, and the identity fallback used when
	// every row participates but sweepRowwise still needs a []int to range
	// over.
	denseActive []int
	denseAll    []int
}

// NewSolver constructs a Solver with the given Option and a deterministic
// random source seeded from seed (0 remaps to a fixed default seed, see
// [NewRandomSource]).
func NewSolver(opt Option, seed uint64) *Solver {
	return &Solver{
		Option: opt,
		rnd:    NewRandomSource(seed),
	}
}

// Reseed resets the solver's shuffle stream, for callers that need
// bit-identical repeated runs without constructing a new Solver.
func (s *Solver) Reseed(seed uint64) {
	s.rnd.Reseed(seed)
}

// Solve dispatches to the LDLT fast path when nub >= n, or to the raw PGS
// iterator otherwise. a is mutated in place either way (LDLT factors it;
// PGS normalizes it), and b is mutated by the PGS path's normalization;
// x is read as the initial guess and written with the result. findex may
// be nil, meaning no row is friction-coupled, the same convention
// [Solver.SolveDense] documents for its own findex parameter.
func (s *Solver) Solve(n int, a *Padded, x, b []float64, nub int, lo, hi []float64, findex []int) Result {
	if n == 0 {
		return Result{Iterations: 0, Converged: true}
	}
	if nub >= n {
		solveLDLT(n, a, x, b)
		return Result{Iterations: 0, Converged: true}
	}
	if cap(s.active) < n {
		s.active = make([]int, 0, n)
	}
	return pgsRaw(n, a, x, b, lo, hi, findex, s.Option, s.rnd, s.active)
}

// SolveDense is the dense-matrix entry point of spec §4.4/§4.8. a is not
// mutated; the solver keeps a normalized copy in its own scratch. findex
// may be nil, meaning no row is friction-coupled; when it is not, rows
// with findex[i] >= 0 are projected against the Coulomb friction pyramid
// exactly as the raw variant does, via a row-by-row sweep (see
// sweepRowwise) rather than the batched triangular solve.
func (s *Solver) SolveDense(a *Dense, x, b, lo, hi []float64, nub int, findex []int) Result {
	n := a.Rows()
	if n == 0 {
		return Result{Iterations: 0, Converged: true}
	}
	if nub >= n {
		p := FromDense(a)
		solveLDLT(n, p, x, b)
		return Result{Iterations: 0, Converged: true}
	}

	epsDiv := s.Option.EpsilonForDivision
	if epsDiv <= 0 {
		epsDiv = PGSEpsilon
	}

	// Degeneracy pinning (spec property 4) applies to the dense variant
	// exactly as it does to the raw one: a near-zero diagonal forces its
	// variable to 0 and excludes it from every later sweep, rather than
	// letting the row-normalization step divide by it.
	var active []int
	for i := 0; i < n; i++ {
		if a.At(i, i) < epsDiv {
			x[i] = 0
			if active == nil {
				if cap(s.denseActive) < n {
					s.denseActive = make([]int, 0, n)
				}
				active = s.denseActive[:0]
				for k := 0; k < i; k++ {
					active = append(active, k)
				}
			}
			continue
		}
		if active != nil {
			active = append(active, i)
		}
	}

	if n < s.Option.MaxIteration {
		return s.solveDenseNormalized(a, x, b, lo, hi, findex, active)
	}
	return s.solveDenseRaw(a, x, b, lo, hi, findex, active)
}
