// Package config loads solver configuration and scenario definitions from
// YAML, the way cmd/aleutian/main.go in the wider corpus reads config.yaml
// into a struct with yaml.Unmarshal before handing it to cobra commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/setanarut/boxlcp"
)

// Solver mirrors every [boxlcp.Option] field so it can carry YAML tags
// without requiring boxlcp itself to depend on yaml.v3. It also carries a
// Seed field, which is parsed from YAML but is not part of boxlcp.Option
// and is dropped by [Solver.Option].
type Solver struct {
	MaxIteration             int     `yaml:"maxIteration"`
	DeltaXThreshold          float64 `yaml:"deltaXThreshold"`
	RelativeDeltaXTolerance  float64 `yaml:"relativeDeltaXTolerance"`
	EpsilonForDivision       float64 `yaml:"epsilonForDivision"`
	RandomizeConstraintOrder bool    `yaml:"randomizeConstraintOrder"`
	Seed                     uint64  `yaml:"seed"`
}

// Option converts the YAML-facing Solver config into a [boxlcp.Option].
// Zero-valued fields are left as zero; callers that want the package
// defaults should start from [Default] rather than an empty Solver.
func (s Solver) Option() boxlcp.Option {
	return boxlcp.Option{
		MaxIteration:             s.MaxIteration,
		DeltaXThreshold:          s.DeltaXThreshold,
		RelativeDeltaXTolerance:  s.RelativeDeltaXTolerance,
		EpsilonForDivision:       s.EpsilonForDivision,
		RandomizeConstraintOrder: s.RandomizeConstraintOrder,
	}
}

// Scenario is one named LCP problem a config file can bundle — literal
// matrix rows plus the box/friction data, for the CLI's solve and bench
// subcommands.
type Scenario struct {
	Name     string      `yaml:"name"`
	A        [][]float64 `yaml:"a"`
	B        []float64   `yaml:"b"`
	Lo       []float64   `yaml:"lo"`
	Hi       []float64   `yaml:"hi"`
	FIndex   []int       `yaml:"findex,omitempty"`
	Nub      int         `yaml:"nub"`
	InitialX []float64   `yaml:"x0,omitempty"`
}

// File is the top-level shape of a config.yaml: solver settings shared
// across every scenario, plus the scenario list itself.
type File struct {
	Solver    Solver     `yaml:"solver"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the package defaults expressed as YAML-facing config,
// matching [boxlcp.DefaultOption] field for field.
func Default() Solver {
	opt := boxlcp.DefaultOption()
	return Solver{
		MaxIteration:             opt.MaxIteration,
		DeltaXThreshold:          opt.DeltaXThreshold,
		RelativeDeltaXTolerance:  opt.RelativeDeltaXTolerance,
		EpsilonForDivision:       opt.EpsilonForDivision,
		RandomizeConstraintOrder: opt.RandomizeConstraintOrder,
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if f.Solver == (Solver{}) {
		f.Solver = Default()
	}
	return &f, nil
}

// Dense builds the [boxlcp.Dense] matrix the scenario's A rows describe.
func (s Scenario) Dense() *boxlcp.Dense {
	return boxlcp.DenseFromRows(s.A)
}
