package boxlcp_test

import (
	"math"
	"testing"

	"github.com/setanarut/boxlcp"
	"github.com/stretchr/testify/require"
)

func scenarioOption() boxlcp.Option {
	opt := boxlcp.DefaultOption()
	opt.MaxIteration = 30
	opt.DeltaXThreshold = 1e-6
	return opt
}

// S1: 2x2 unbounded, routed through the LDLT fast path on both entry
// points since nub == n.
func TestSolveS1Unconstrained(t *testing.T) {
	a := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{2, 0},
		{0, 2},
	}))
	x := []float64{0, 0}
	b := []float64{4, -2}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.Solve(2, a, x, b, 2, nil, nil, nil)

	require.True(t, res.Converged)
	require.InDelta(t, 2.0, x[0], 1e-9)
	require.InDelta(t, -1.0, x[1], 1e-9)
}

func TestSolveDenseS1Unconstrained(t *testing.T) {
	a := boxlcp.DenseFromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	x := []float64{0, 0}
	b := []float64{4, -2}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.SolveDense(a, x, b, nil, nil, 2, nil)

	require.True(t, res.Converged)
	require.InDelta(t, 2.0, x[0], 1e-9)
	require.InDelta(t, -1.0, x[1], 1e-9)
}

// S2: 2x2, lower-clamped.
func TestSolveDenseS2LowerClamped(t *testing.T) {
	a := boxlcp.DenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	})
	x := []float64{0, 0}
	b := []float64{5, -5}
	lo := []float64{0, 0}
	hi := []float64{10, 10}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.SolveDense(a, x, b, lo, hi, 0, nil)

	require.True(t, res.Converged)
	require.Equal(t, []float64{5, 0}, x)
}

func TestSolveS2LowerClampedRaw(t *testing.T) {
	a := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	}))
	x := []float64{0, 0}
	b := []float64{5, -5}
	lo := []float64{0, 0}
	hi := []float64{10, 10}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.Solve(2, a, x, b, 0, lo, hi, nil)

	require.True(t, res.Converged)
	require.Equal(t, []float64{5, 0}, x)
}

// S3: 2x2, upper-clamped.
func TestSolveDenseS3UpperClamped(t *testing.T) {
	a := boxlcp.DenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	})
	x := []float64{0, 0}
	b := []float64{20, 20}
	lo := []float64{0, 0}
	hi := []float64{10, 10}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.SolveDense(a, x, b, lo, hi, 0, nil)

	require.True(t, res.Converged)
	require.Equal(t, []float64{10, 10}, x)
}

// S4: 3x3 friction coupling.
func TestSolveDenseS4FrictionCoupling(t *testing.T) {
	a := boxlcp.DenseFromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	x := []float64{0, 0, 0}
	b := []float64{1, 0.3, -0.4}
	lo := []float64{1, 0.5, 0.5}
	hi := []float64{1, 0.5, 0.5}
	findex := []int{-1, 0, 0}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.SolveDense(a, x, b, lo, hi, 0, findex)

	require.True(t, res.Converged)
	require.InDelta(t, 1.0, x[0], 1e-9)
	require.InDelta(t, 0.3, x[1], 1e-9)
	require.InDelta(t, -0.4, x[2], 1e-9)
}

func TestSolveS4FrictionCouplingRaw(t *testing.T) {
	a := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}))
	x := []float64{0, 0, 0}
	b := []float64{1, 0.3, -0.4}
	lo := []float64{1, 0.5, 0.5}
	hi := []float64{1, 0.5, 0.5}
	findex := []int{-1, 0, 0}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.Solve(3, a, x, b, 0, lo, hi, findex)

	require.True(t, res.Converged)
	require.InDelta(t, 1.0, x[0], 1e-9)
	require.InDelta(t, 0.3, x[1], 1e-9)
	require.InDelta(t, -0.4, x[2], 1e-9)
}

// S5: degenerate row pinned to zero regardless of b.
func TestSolveDenseS5DegenerateRow(t *testing.T) {
	a := boxlcp.DenseFromRows([][]float64{
		{2, 0, 0},
		{0, 1e-12, 0},
		{0, 0, 2},
	})
	x := []float64{0, 0, 0}
	b := []float64{2, 99, -4}
	inf := math.Inf(1)
	lo := []float64{-inf, -inf, -inf}
	hi := []float64{inf, inf, inf}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.SolveDense(a, x, b, lo, hi, 0, nil)

	require.True(t, res.Converged)
	require.Equal(t, []float64{1, 0, -2}, x)
}

func TestSolveS5DegenerateRowRaw(t *testing.T) {
	a := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{2, 0, 0},
		{0, 1e-12, 0},
		{0, 0, 2},
	}))
	x := []float64{0, 0, 0}
	b := []float64{2, 99, -4}
	inf := math.Inf(1)
	lo := []float64{-inf, -inf, -inf}
	hi := []float64{inf, inf, inf}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.Solve(3, a, x, b, 0, lo, hi, nil)

	require.True(t, res.Converged)
	require.Equal(t, []float64{1, 0, -2}, x)
}

// S6: a solve cut off by a three-iteration cap still returns a feasible
// point rather than erroring.
func TestSolveDenseS6NonConvergenceStillFeasible(t *testing.T) {
	const n = 10
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1.0 / float64(1+abs(i-j))
		}
		rows[i][i] = float64(n) * 2
	}
	a := boxlcp.DenseFromRows(rows)

	x := make([]float64, n)
	b := make([]float64, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range b {
		b[i] = float64(i) - 3
		lo[i] = -1
		hi[i] = 1
	}

	opt := boxlcp.DefaultOption()
	opt.MaxIteration = 3
	s := boxlcp.NewSolver(opt, 1)
	res := s.SolveDense(a, x, b, lo, hi, 0, nil)

	require.LessOrEqual(t, res.Iterations, 3)
	for i := range x {
		require.GreaterOrEqual(t, x[i], lo[i]-1e-12)
		require.LessOrEqual(t, x[i], hi[i]+1e-12)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestSolveTrivialN0(t *testing.T) {
	s := boxlcp.NewSolver(scenarioOption(), 1)
	res := s.Solve(0, boxlcp.NewPadded(0), nil, nil, 0, nil, nil, nil)
	require.True(t, res.Converged)
	require.Equal(t, 0, res.Iterations)
}

func TestSolveIdempotentOnSolution(t *testing.T) {
	a := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	}))
	b := []float64{5, -5}
	lo := []float64{0, 0}
	hi := []float64{10, 10}

	s := boxlcp.NewSolver(scenarioOption(), 1)
	x := []float64{0, 0}
	s.Solve(2, a, x, b, 0, lo, hi, nil)

	a2 := boxlcp.FromDense(boxlcp.DenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	}))
	b2 := []float64{5, -5}
	res := s.Solve(2, a2, x, b2, 0, lo, hi, nil)

	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
}
