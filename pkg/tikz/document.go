package tikz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Document wraps circuit markup in a minimal standalone LaTeX document.
func Document(body string) string {
	return "\\documentclass{article}\n" +
		"\\usepackage{circuitikz}\n" +
		"\\begin{document}\n" +
		body + "\n" +
		"\\end{document}\n"
}

// ReadText reads r in full. The text is not interpreted.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return string(data), nil
}

// WriteText writes text to w verbatim.
func WriteText(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

// WriteDocument writes body wrapped by Document to w.
func WriteDocument(w io.Writer, body string) error {
	if _, err := io.WriteString(w, Document(body)); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// LoadFile reads a markup file into a string.
func LoadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadText(f)
}

// SaveFile writes text to path, creating parent directories as needed.
func SaveFile(path, text string) error {
	return writeFile(path, func(w io.Writer) error { return WriteText(w, text) })
}

// ExportFile writes body as a standalone document to path.
func ExportFile(path, body string) error {
	return writeFile(path, func(w io.Writer) error { return WriteDocument(w, body) })
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
