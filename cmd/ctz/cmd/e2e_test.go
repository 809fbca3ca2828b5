package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/preview"
)

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Read in background to prevent pipe buffer from blocking
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	verbose = false
	generateOutput = ""
	exportOutput = ""
	exportMarkup = ""
	previewOutput = ""
	previewFormat = ""

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String(), err
}

func TestGenerateE2E(t *testing.T) {
	divider := filepath.Join("..", "testdata", "divider.ctz")

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "divider script",
			args: []string{"generate", divider},
			wantContain: []string{
				`\begin{circuitikz}[scale=1.0]`,
				"% Circuit elements",
				"% Resistors",
				`\draw (3.00,2.00) to[R, l=$R$] ++(2,0);`,
				`\draw (3.00,-2.00) to[R, l=$R_2$] ++(2,0);`,
				"% Sources",
				`\draw (0.00,-0.00) to[V, l=$V$] ++(0,-2);`,
				"% Ground connections",
				`\node[ground] at (0.00,-4.00) {};`,
				"% Example connections (manually adjust as needed)",
				`\end{circuitikz}`,
			},
		},
		{
			name:    "missing script",
			args:    []string{"generate", filepath.Join("..", "testdata", "missing.ctz")},
			wantErr: true,
		},
		{
			name:    "too many args",
			args:    []string{"generate", divider, divider},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestGenerateSectionOrder(t *testing.T) {
	output, err := runCLI(t, "generate", filepath.Join("..", "testdata", "divider.ctz"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	resistors := strings.Index(output, "% Resistors")
	sources := strings.Index(output, "% Sources")
	grounds := strings.Index(output, "% Ground connections")
	if !(resistors < sources && sources < grounds) {
		t.Fatalf("sections out of order: resistors=%d sources=%d grounds=%d", resistors, sources, grounds)
	}
}

func TestGenerateToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "body.tex")
	if _, err := runCLI(t, "generate", filepath.Join("..", "testdata", "divider.ctz"), "-o", out); err != nil {
		t.Fatalf("generate -o: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, `\begin{circuitikz}`) || !strings.HasSuffix(text, `\end{circuitikz}`) {
		t.Fatalf("file is not a bare circuitikz block:\n%s", text)
	}
}

func TestExportE2E(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "divider.tex")
	if _, err := runCLI(t, "export", filepath.Join("..", "testdata", "divider.ctz"), "-o", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"\\documentclass{article}\n\\usepackage{circuitikz}\n\\begin{document}\n\\begin{circuitikz}",
		"\\end{circuitikz}\n\\end{document}\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q\nGot:\n%s", want, text)
		}
	}
}

func TestExportSavedMarkup(t *testing.T) {
	dir := t.TempDir()
	body := filepath.Join(dir, "body.tex")
	if _, err := runCLI(t, "generate", filepath.Join("..", "testdata", "divider.ctz"), "-o", body); err != nil {
		t.Fatalf("generate -o: %v", err)
	}
	saved, err := os.ReadFile(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	doc := filepath.Join(dir, "doc.tex")
	if _, err := runCLI(t, "export", "--markup", body, "-o", doc); err != nil {
		t.Fatalf("export --markup: %v", err)
	}
	data, err := os.ReadFile(doc)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	want := "\\documentclass{article}\n\\usepackage{circuitikz}\n\\begin{document}\n" + string(saved) + "\n\\end{document}\n"
	if string(data) != want {
		t.Fatalf("export of saved markup:\n%s\nwant:\n%s", data, want)
	}

	if _, err := runCLI(t, "export", "--markup", filepath.Join(dir, "missing.tex")); err == nil {
		t.Errorf("Expected error for a missing markup file")
	}
	if _, err := runCLI(t, "export", "--markup", body, filepath.Join("..", "testdata", "divider.ctz")); err == nil {
		t.Errorf("Expected error when combining --markup with a script")
	}
}

func TestWritePreviewErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := circuit.NewCanvas()
	if err := writePreview(filepath.Join(blocker, "out.svg"), c, preview.SVG); err == nil {
		t.Errorf("Expected error when the parent is a regular file")
	}
	if err := writePreview(dir, c, preview.SVG); err == nil {
		t.Errorf("Expected error when the target is a directory")
	}

	out := filepath.Join(dir, "a", "b", "out.pdf")
	if err := writePreview(out, c, preview.PDF); err != nil {
		t.Fatalf("writePreview: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Fatalf("preview file missing or empty: %v", err)
	}
}

func TestExportStdout(t *testing.T) {
	output, err := runCLI(t, "export", filepath.Join("..", "testdata", "divider.ctz"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(output, `\documentclass{article}`) {
		t.Fatalf("stdout export does not start with the preamble:\n%s", output)
	}
}

func TestPreviewE2E(t *testing.T) {
	divider := filepath.Join("..", "testdata", "divider.ctz")
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		file    string
		prefix  string
		wantErr bool
	}{
		{
			name:   "svg from extension",
			args:   []string{"preview", divider, "-o", filepath.Join(dir, "divider.svg")},
			file:   filepath.Join(dir, "divider.svg"),
			prefix: "<?xml",
		},
		{
			name:   "png from extension",
			args:   []string{"preview", divider, "-o", filepath.Join(dir, "img", "divider.png")},
			file:   filepath.Join(dir, "img", "divider.png"),
			prefix: "\x89PNG",
		},
		{
			name:   "format flag wins",
			args:   []string{"preview", divider, "-o", filepath.Join(dir, "divider.out"), "--format", "pdf"},
			file:   filepath.Join(dir, "divider.out"),
			prefix: "%PDF",
		},
		{
			name:    "unknown extension",
			args:    []string{"preview", divider, "-o", filepath.Join(dir, "divider.bmp")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			data, err := os.ReadFile(tt.file)
			if err != nil {
				t.Fatalf("read preview: %v", err)
			}
			if !bytes.HasPrefix(data, []byte(tt.prefix)) {
				t.Errorf("preview starts with %q, want %q", data[:min(len(data), 8)], tt.prefix)
			}
		})
	}
}

func TestPreviewStdout(t *testing.T) {
	output, err := runCLI(t, "preview", filepath.Join("..", "testdata", "divider.ctz"))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(output, "<svg") {
		t.Fatalf("stdout preview is not SVG:\n%.200s", output)
	}
}
