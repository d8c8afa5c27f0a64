// Package config reads the CLI's .sketchsolverc ini file with gopkg.in/gcfg.v1.
package config

import (
	"fmt"
	"os"

	"gopkg.in/gcfg.v1"
)

// Config holds the solver-tuning knobs a CLI invocation may override. A zero Config (the result
// of Load on a missing file) means "use every package default."
type Config struct {
	Epsilon      float64
	DraggingHint string
	Verbose      bool
}

type solverSection struct {
	Solver struct {
		Epsilon      float64
		DraggingHint string `gcfg:"dragging-hint"`
		Verbose      bool
	}
}

// Load reads path as a gcfg ini file and returns the resulting Config. A missing file is not an
// error — Load returns the zero Config, and callers fall back to package defaults. A malformed
// file is.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var section solverSection
	if err := gcfg.ReadFileInto(&section, path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &Config{
		Epsilon:      section.Solver.Epsilon,
		DraggingHint: section.Solver.DraggingHint,
		Verbose:      section.Solver.Verbose,
	}, nil
}
