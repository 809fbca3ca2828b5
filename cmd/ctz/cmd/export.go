package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/tikz"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportMarkup string
)

var exportCmd = &cobra.Command{
	Use:   "export [script-file]",
	Short: "Run a command script and write a standalone LaTeX document",
	Long: `Replay a command script and wrap the generated circuitikz block in a
minimal article document that loads the circuitikz package. With --markup
an existing circuitikz file (as saved by the editor or generate -o) is
wrapped instead of running a script.

Examples:
  ctz export divider.ctz -o divider.tex
  ctz export divider.ctz               # print the document to stdout
  ctz export --markup body.tex -o divider.tex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"document file to write (stdout when empty)")
	exportCmd.Flags().StringVarP(&exportMarkup, "markup", "m", "",
		"wrap this circuitikz file instead of running a script")
}

func runExport(cmd *cobra.Command, args []string) error {
	markup, count, err := exportBody(args)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Print(tikz.Document(markup))
		return nil
	}
	if err := tikz.ExportFile(exportOutput, markup); err != nil {
		return err
	}
	if verbose {
		if count < 0 {
			fmt.Printf("Exported %s to %s\n", exportMarkup, exportOutput)
		} else {
			fmt.Printf("Exported %d elements to %s\n", count, exportOutput)
		}
	}
	return nil
}

// exportBody returns the markup to wrap and the number of elements behind it
// (-1 when the markup was loaded from a file).
func exportBody(args []string) (string, int, error) {
	if exportMarkup != "" {
		if len(args) > 0 {
			return "", 0, fmt.Errorf("--markup cannot be combined with a script file")
		}
		markup, err := tikz.LoadFile(exportMarkup)
		if err != nil {
			return "", 0, err
		}
		return strings.TrimRight(markup, "\n"), -1, nil
	}

	c, err := runScript(args)
	if err != nil {
		return "", 0, err
	}
	return tikz.Generate(c), c.Len(), nil
}
