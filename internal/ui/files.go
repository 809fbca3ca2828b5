package ui

import (
	"errors"
	"fmt"
	"log"

	"gioui.org/x/explorer"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/tikz"
)

type fileOp int

const (
	fileOpen fileOp = iota
	fileSave
	fileExport
)

func (op fileOp) String() string {
	switch op {
	case fileOpen:
		return "open"
	case fileSave:
		return "save"
	case fileExport:
		return "export"
	default:
		return fmt.Sprintf("fileOp(%d)", int(op))
	}
}

// fileResult is handed from a dialog goroutine back to the frame loop.
type fileResult struct {
	op   fileOp
	path string
	text string // loaded text, open only
	err  error
}

const fileResultBuffer = 4

func (a *App) openFile() {
	go func() {
		rc, err := a.explorer.ChooseFile("tex", "txt")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.finishFile(fileResult{op: fileOpen, err: err})
			}
			return
		}
		defer rc.Close()

		text, err := tikz.ReadText(rc)
		a.finishFile(fileResult{op: fileOpen, path: nameOf(rc), text: text, err: err})
	}()
}

func (a *App) saveFile() {
	text := a.tikzEditor.Text()
	go func() {
		wc, err := a.explorer.CreateFile("circuit.tex")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.finishFile(fileResult{op: fileSave, err: err})
			}
			return
		}
		err = tikz.WriteText(wc, text)
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
		a.finishFile(fileResult{op: fileSave, path: nameOf(wc), err: err})
	}()
}

func (a *App) exportFile() {
	body := a.tikzEditor.Text()
	go func() {
		wc, err := a.explorer.CreateFile("circuit_document.tex")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.finishFile(fileResult{op: fileExport, err: err})
			}
			return
		}
		err = tikz.WriteDocument(wc, body)
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
		a.finishFile(fileResult{op: fileExport, path: nameOf(wc), err: err})
	}()
}

func (a *App) finishFile(res fileResult) {
	a.fileResults <- res
	a.window.Invalidate()
}

// drainFileResults applies finished dialog results on the UI goroutine.
func (a *App) drainFileResults() {
	for {
		select {
		case res := <-a.fileResults:
			a.applyFileResult(res)
		default:
			return
		}
	}
}

func (a *App) applyFileResult(res fileResult) {
	if res.err != nil {
		log.Printf("ui: %s failed: %v", res.op, res.err)
		a.Logf("[ERROR] %s failed: %v", res.op, res.err)
		switch res.op {
		case fileOpen:
			a.state.Warn("Could not open file")
		case fileSave:
			a.state.Warn("Could not save file")
		case fileExport:
			a.state.Warn("Could not export file")
		}
		return
	}

	switch res.op {
	case fileOpen:
		a.tikzEditor.SetText(res.text)
		a.state.SetFilePath(res.path)
		a.flash("Circuit loaded")
	case fileSave:
		a.state.SetFilePath(res.path)
		a.flash("Circuit saved")
	case fileExport:
		a.flash("TikZ exported")
	}
	if res.path != "" {
		a.Logf("[INFO] %s: %s", res.op, res.path)
	}
}

// nameOf returns the file path behind a dialog handle when the platform
// hands back an *os.File.
func nameOf(f any) string {
	if named, ok := f.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}
