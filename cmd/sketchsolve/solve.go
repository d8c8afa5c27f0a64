package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/sketchfile"
	"github.com/philipparndt/gosketch/pkg/solve"
	"github.com/spf13/cobra"
)

var (
	solveConfigPath string
	solveVerbose    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a sketch and print the resolved point positions",
	Args:  cobra.ExactArgs(1),
	Run:   runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveConfigPath, "config", ".sketchsolverc", "path to the solver config file")
	solveCmd.Flags().BoolVar(&solveVerbose, "verbose", false, "print the full per-step solve log")
}

func runSolve(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(solveConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	verbose := solveVerbose || cfg.Verbose

	points, constraints, err := sketchfile.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", err)
		os.Exit(1)
	}

	if cfg.DraggingHint != "" {
		points.Prioritize(cfg.DraggingHint)
	}

	result := solve.Solve(points, constraints)

	fmt.Println("Sketch Solution")
	fmt.Println("===============")
	if verbose && cfg.Epsilon != 0 {
		fmt.Printf("Configured epsilon: %g\n\n", cfg.Epsilon)
	}
	for _, id := range points.IDs() {
		pos := result.Solution[id]
		fmt.Printf("  %-12s (%.6f, %.6f)\n", id, pos.X, pos.Y)
	}

	if len(result.Arbitrary) > 0 {
		fmt.Printf("\nArbitrary (underdetermined or infeasible) points: %v\n", result.Arbitrary)
	}

	if verbose {
		fmt.Println("\nSolve Log")
		fmt.Println("=========")
		for i, step := range result.Log {
			fmt.Printf("%d. %-12s freedom=%d initial=(%.3f, %.3f) chosen=(%.3f, %.3f)\n",
				i+1, step.Variable, step.Freedom,
				step.Initial.X, step.Initial.Y, step.Chosen.X, step.Chosen.Y)
			for j, locus := range step.Loci {
				fmt.Printf("   locus %d: %T %+v\n", j+1, locus, locus)
			}
		}
	}
}
