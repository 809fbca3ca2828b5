package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/preview"
	"github.com/spf13/cobra"
)

var (
	previewOutput string
	previewFormat string
)

var previewCmd = &cobra.Command{
	Use:   "preview [script-file]",
	Short: "Run a command script and draw the schematic to SVG, PNG or PDF",
	Long: `Replay a command script and draw the placed elements with the same glyphs
the editor uses. The format follows the output file extension unless
--format is given. Without -o the image is written to stdout.

Examples:
  ctz preview divider.ctz -o divider.svg
  ctz preview divider.ctz -o divider.png
  ctz preview divider.ctz --format pdf > divider.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "",
		"image file to write (stdout when empty)")
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "",
		"svg, png or pdf (default: from the output extension, else svg)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	format, err := previewFormatFor(previewFormat, previewOutput)
	if err != nil {
		return err
	}

	c, err := runScript(args)
	if err != nil {
		return err
	}

	if previewOutput == "" {
		if err := preview.Render(os.Stdout, c, format); err != nil {
			return err
		}
	} else if err := writePreview(previewOutput, c, format); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Drew %d elements as %s\n", c.Len(), format)
	}
	return nil
}

// writePreview renders c into path, creating parent directories. Close
// errors are returned.
func writePreview(path string, c *circuit.Canvas, format preview.Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	if err := preview.Render(f, c, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %w", err)
	}
	return nil
}

func previewFormatFor(flag, output string) (preview.Format, error) {
	switch {
	case flag != "":
		return preview.ParseFormat(flag)
	case output != "":
		return preview.FormatFromPath(output)
	default:
		return preview.SVG, nil
	}
}
