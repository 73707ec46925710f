// Package boxlcp solves the boxed mixed linear complementarity problem
// (MLCP) that shows up at the bottom of a rigid-body constraint pipeline:
// given a symmetric positive-semidefinite A, a right-hand side b, and
// per-variable box limits (optionally coupled through a friction index),
// find x such that
//
//	w = A*x - b
//
// and for every i exactly one of
//
//	lo[i] < x[i] < hi[i]  and  w[i] == 0
//	x[i] == lo[i]         and  w[i] >= 0
//	x[i] == hi[i]         and  w[i] <= 0
//
// holds, with friction rows scaling their own bounds off another row's
// solved value (the Coulomb pyramid).
//
// The package provides two independent entry points sharing the same
// algorithm family:
//
//   - [Solver.Solve], operating on a padded, in-place-mutated dense matrix
//     (the hot path: pointer arithmetic, no allocation after warm-up).
//   - [Solver.SolveDense], operating on a [Dense] matrix value that the
//     solver does not mutate (a normalized copy lives in scratch).
//
// Everything upstream of this package — turning contacts and joints into
// A, b, lo, hi and findex — is somebody else's problem; see the assembler
// package for one way to do it.
package boxlcp
