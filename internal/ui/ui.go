package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run launches the editor window and blocks until it closes.
func Run(cfg *AppConfig, state *AppState) error {
	if state == nil {
		state = NewState()
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("CircuiTikZ Editor "+state.AppVersion()), app.Size(unit.Dp(1200), unit.Dp(800)))
		ui := New(w, cfg, state)
		if err := ui.Run(); err != nil {
			log.Printf("ui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
