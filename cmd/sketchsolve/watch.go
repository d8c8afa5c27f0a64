package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/sketchfile"
	"github.com/philipparndt/gosketch/pkg/solve"
	"github.com/philipparndt/gosketch/pkg/watch"
	"github.com/spf13/cobra"
)

var (
	watchConfigPath string
	watchDebounceMs int
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-solve a sketch every time it is saved",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchConfigPath, "config", ".sketchsolverc", "path to the solver config file")
	watchCmd.Flags().IntVar(&watchDebounceMs, "debounce", 100, "debounce window in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(watchConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	solveAndPrint := func(path string) {
		points, constraints, err := sketchfile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", err)
			return
		}
		if cfg.DraggingHint != "" {
			points.Prioritize(cfg.DraggingHint)
		}

		result := solve.Solve(points, constraints)
		fmt.Println("Sketch Solution")
		fmt.Println("===============")
		for _, id := range points.IDs() {
			pos := result.Solution[id]
			fmt.Printf("  %-12s (%.6f, %.6f)\n", id, pos.X, pos.Y)
		}
		fmt.Println()
	}

	solveAndPrint(filename)

	w, err := watch.Files([]string{filename}, time.Duration(watchDebounceMs)*time.Millisecond, solveAndPrint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching sketch: %v\n", err)
		os.Exit(1)
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
}
