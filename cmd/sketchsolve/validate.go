package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/sketchfile"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/solve"
	"github.com/spf13/cobra"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a sketch for dangling references without solving it",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateConfigPath, "config", ".sketchsolverc", "path to the solver config file")
}

func runValidate(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	points, constraints, err := sketchfile.Load(filename)
	if err != nil {
		// sketchfile.Load already rejects dangling constraint references and unknown kinds;
		// surface that error directly rather than re-deriving it.
		fmt.Fprintf(os.Stderr, "Invalid sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %d point(s), %d constraint(s)\n", points.Len(), len(constraints))

	epsilon := geometry.Epsilon
	if cfg.Epsilon != 0 {
		epsilon = cfg.Epsilon
	}
	warnNearDuplicatePoints(points, epsilon)
}

func warnNearDuplicatePoints(points *solve.Points, epsilon float64) {
	ids := points.IDs()
	for i := 0; i < len(ids); i++ {
		pi, _ := points.Get(ids[i])
		for j := i + 1; j < len(ids); j++ {
			pj, _ := points.Get(ids[j])
			if geometry.Distance(pi, pj) <= epsilon {
				fmt.Printf("Warning: points %q and %q start at nearly the same position\n", ids[i], ids[j])
			}
		}
	}
}
