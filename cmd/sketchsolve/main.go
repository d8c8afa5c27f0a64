package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sketchsolve",
	Short: "A constraint solver for 2-D parametric sketches",
	Long: `sketchsolve loads a JSON sketch document — named points and the geometric
constraints between them — and resolves every point to a concrete position.`,
	Version: version.String(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
