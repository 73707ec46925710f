package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/setanarut/boxlcp/batch"
	"github.com/setanarut/boxlcp/config"
)

func newBenchCmd() *cobra.Command {
	var seedBase uint64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve every scenario in the config file concurrently and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(f.Scenarios) == 0 {
				return fmt.Errorf("config has no scenarios")
			}

			items := make([]batch.Item, len(f.Scenarios))
			for i, sc := range f.Scenarios {
				x := make([]float64, len(sc.B))
				if len(sc.InitialX) == len(x) {
					copy(x, sc.InitialX)
				}
				items[i] = batch.NewItem(sc.Dense(), x, sc.B, sc.Lo, sc.Hi, sc.Nub, sc.FIndex)
			}

			logger.Debug("starting bench", "scenarios", len(items))
			start := time.Now()
			outputs, err := batch.Solve(context.Background(), f.Solver.Option(), seedBase, items)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			for i, out := range outputs {
				fmt.Printf("%-24s iterations=%-4d converged=%t\n",
					f.Scenarios[i].Name, out.Result.Iterations, out.Result.Converged)
			}
			fmt.Printf("solved %d scenarios in %s\n", len(outputs), elapsed)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seedBase, "seed-base", 1, "base seed; item i is seeded with seed-base+i")
	return cmd
}
