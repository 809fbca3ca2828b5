package tikz

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocument(t *testing.T) {
	got := Document("BODY")
	want := "\\documentclass{article}\n\\usepackage{circuitikz}\n\\begin{document}\nBODY\n\\end{document}\n"
	if got != want {
		t.Fatalf("Document() = %q, want %q", got, want)
	}
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, Placeholder); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	if !strings.Contains(buf.String(), Placeholder) {
		t.Fatalf("document does not contain the body verbatim")
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteTextWrapsErrors(t *testing.T) {
	err := WriteText(failingWriter{}, "x")
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("WriteText error = %v, want wrapped errDiskFull", err)
	}
	err = WriteDocument(failingWriter{}, "x")
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("WriteDocument error = %v, want wrapped errDiskFull", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "circuit.tex")
	text := "% hand edited\n\\begin{circuitikz}\n\\end{circuitikz}"

	if err := SaveFile(path, text); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != text {
		t.Fatalf("LoadFile() = %q, want %q", got, text)
	}
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tex")
	if err := ExportFile(path, "BODY"); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Document("BODY") {
		t.Fatalf("exported %q, want %q", data, Document("BODY"))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.tex"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
