// Command boxlcpdemo drives the boxlcp solver core from a YAML config file:
// solve runs one named scenario and prints the result, bench fans every
// scenario in the file out across boxlcp/batch and reports how long the
// batch took. The solver core itself never logs or parses flags — this is
// the outer layer that does, built with cobra and log/slog the way the
// wider corpus's CLIs are.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logger     *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "boxlcpdemo",
		Short: "Run boxed-LCP scenarios through the boxlcp solver",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "boxlcp.yaml", "path to scenario config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
