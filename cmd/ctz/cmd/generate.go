package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/script"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/tikz"
	"github.com/spf13/cobra"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate [script-file]",
	Short: "Run a command script and print the circuitikz markup",
	Long: `Replay a command script against an empty canvas and print the generated
circuitikz block. Reads the script from stdin when no file (or "-") is given.

Script lines:
  arm <type>                 click <x> <y>
  place <type> at <x> <y>    move <id> to <x> <y>
  label <id> "<text>"        zoom in|out [<steps>]
  clear

Labels are taken literally, so LaTeX like "R_{\Omega}" needs no extra
escaping. Write \" for a quote inside a label.

Examples:
  ctz generate divider.ctz
  echo "place resistor at 0 0" | ctz generate
  ctz generate divider.ctz -o divider_body.tex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"write the markup to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	c, err := runScript(args)
	if err != nil {
		return err
	}
	markup := tikz.Generate(c)

	if generateOutput == "" {
		fmt.Println(markup)
		return nil
	}
	if err := tikz.SaveFile(generateOutput, markup); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Wrote %d elements to %s\n", c.Len(), generateOutput)
	}
	return nil
}

// runScript parses the script named by args (stdin when absent or "-") and
// replays it on a fresh canvas.
func runScript(args []string) (*circuit.Canvas, error) {
	parser, err := script.NewParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	var s *script.Script
	if len(args) == 0 || args[0] == "-" {
		if verbose {
			fmt.Fprintln(os.Stderr, "Reading script from stdin")
		}
		s, err = parser.Parse(os.Stdin)
	} else {
		if verbose {
			fmt.Fprintf(os.Stderr, "Parsing script: %s\n", args[0])
		}
		s, err = parser.ParseFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	c := circuit.NewCanvas()
	if err := script.Run(s, c); err != nil {
		return nil, fmt.Errorf("failed to run script: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Placed %d elements\n", c.Len())
	}
	return c, nil
}
