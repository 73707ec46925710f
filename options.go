package boxlcp

// PGSEpsilon is the default minimum acceptable matrix diagonal, used by
// [CanSolve] and as the default [Option.EpsilonForDivision].
const PGSEpsilon = 1e-8

// Option configures a [Solver]'s termination behavior. Callers override
// the whole struct — there is no partial-override merge logic, matching
// the teacher's own config structs (see Space.Iterations and friends).
type Option struct {
	// MaxIteration caps the number of PGS sweeps, including the initial
	// filtering sweep.
	MaxIteration int
	// DeltaXThreshold is the absolute per-variable change tolerance used
	// by the initial filtering sweep and by the dense-matrix variant.
	DeltaXThreshold float64
	// RelativeDeltaXTolerance is the relative change tolerance used by
	// the raw variant's main sweeps, once a variable's magnitude exceeds
	// EpsilonForDivision.
	RelativeDeltaXTolerance float64
	// EpsilonForDivision floors both the acceptable matrix diagonal and
	// the denominator of the relative-tolerance test.
	EpsilonForDivision float64
	// RandomizeConstraintOrder, if true, shuffles the active index list
	// every 8 main-loop iterations.
	RandomizeConstraintOrder bool
}

// DefaultOption returns the solver's default termination configuration.
func DefaultOption() Option {
	return Option{
		MaxIteration:             20,
		DeltaXThreshold:          1e-6,
		RelativeDeltaXTolerance:  1e-6,
		EpsilonForDivision:       PGSEpsilon,
		RandomizeConstraintOrder: false,
	}
}
