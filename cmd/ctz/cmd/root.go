package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ctz",
	Short: "CircuiTikZ Editor - place circuit elements and generate circuitikz markup",
	Long: `ctz places resistors, capacitors, inductors, sources, grounds and nodes
on a snapped grid and turns them into circuitikz markup.

Examples:
  ctz ui                                   # Launch the interactive editor
  ctz generate divider.ctz                 # Print the markup for a command script
  ctz export divider.ctz -o divider.tex    # Write a complete LaTeX document
  ctz preview divider.ctz -o divider.svg   # Draw the schematic to SVG, PNG or PDF`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
