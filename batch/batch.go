// Package batch fans a set of independent boxed-LCP problems out across
// goroutines, one boxlcp.Solver per goroutine, joined with
// golang.org/x/sync/errgroup the way the wider corpus's enrichment
// pipeline runs independent enrichers in parallel. Solver instances are
// not shared across goroutines (see boxlcp.Solver's own concurrency note);
// this package exists so a caller with many independent problems doesn't
// have to write that fan-out itself.
package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/setanarut/boxlcp"
)

// Item is one independent boxed-LCP problem to solve, tagged with a
// stable ID so results can be correlated back to inputs without
// positional coupling once they come back from concurrent goroutines.
type Item struct {
	ID     uuid.UUID
	A      *boxlcp.Dense
	X      []float64
	B      []float64
	Lo, Hi []float64
	Nub    int
	FIndex []int
}

// NewItem builds an Item with a freshly generated ID.
func NewItem(a *boxlcp.Dense, x, b, lo, hi []float64, nub int, findex []int) Item {
	return Item{
		ID:     uuid.New(),
		A:      a,
		X:      x,
		B:      b,
		Lo:     lo,
		Hi:     hi,
		Nub:    nub,
		FIndex: findex,
	}
}

// Output pairs an Item's ID and solved x with the Result its Solver
// returned.
type Output struct {
	ID     uuid.UUID
	X      []float64
	Result boxlcp.Result
}

// Solve runs items concurrently, each against its own boxlcp.Solver
// seeded deterministically from seedBase+index so the batch as a whole
// stays reproducible (spec §8 item 5) despite running out of order.
// Outputs are returned in the same order as items, not completion order.
func Solve(ctx context.Context, opt boxlcp.Option, seedBase uint64, items []Item) ([]Output, error) {
	outputs := make([]Output, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			if len(item.X) != item.A.Rows() {
				return fmt.Errorf("batch: item %s: x has length %d, want %d", item.ID, len(item.X), item.A.Rows())
			}

			s := boxlcp.NewSolver(opt, seedBase+uint64(i))
			res := s.SolveDense(item.A, item.X, item.B, item.Lo, item.Hi, item.Nub, item.FIndex)
			outputs[i] = Output{ID: item.ID, X: item.X, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
