package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"gioui.org/app"
	gfont "gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/renderer"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/tikz"
)

// toolButton arms one placeable element type.
type toolButton struct {
	typ   circuit.ElementType
	icon  *widget.Icon
	click widget.Clickable
}

var toolIcons = map[circuit.ElementType][]byte{
	circuit.Resistor:      icons.EditorShowChart,
	circuit.Capacitor:     icons.ActionViewStream,
	circuit.Inductor:      icons.ImageLooks,
	circuit.VoltageSource: icons.DeviceBatteryFull,
	circuit.CurrentSource: icons.ImageFlashOn,
	circuit.Ground:        icons.EditorVerticalAlignBottom,
}

// App drives the Gio schematic editor window.
type App struct {
	window  *app.Window
	ops     op.Ops
	gvTheme *theme.Theme

	config *AppConfig
	state  *AppState

	canvas *circuit.Canvas
	view   *canvasView

	fileMenuBtn widget.Clickable
	fileMenu    *menu.DropdownMenu
	viewMenuBtn widget.Clickable
	viewMenu    *menu.DropdownMenu

	tools []*toolButton

	tikzEditor  widget.Editor
	labelEditor widget.Editor
	labelTarget circuit.ElementID
	labelBound  bool

	warningOK    widget.Clickable
	warningScrim bool

	showLog bool
	logList layout.List

	explorer    *explorer.Explorer
	fileResults chan fileResult
}

// New wires the window, theme, configuration and canvas together.
func New(w *app.Window, cfg *AppConfig, state *AppState) *App {
	if w == nil {
		w = new(app.Window)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if state == nil {
		state = NewState()
	}

	a := &App{
		window:      w,
		gvTheme:     theme.NewTheme("", nil, true),
		config:      cfg,
		state:       state,
		canvas:      circuit.NewCanvas(),
		explorer:    explorer.NewExplorer(w),
		fileResults: make(chan fileResult, fileResultBuffer),
	}
	a.view = newCanvasView(a.canvas, a.dispatch, renderer.ParseTheme(cfg.Theme))
	a.view.opts.ShowGrid = cfg.ShowGrid
	a.view.onError = a.reportError
	a.view.onCancel = func() { a.state.SetStatus(StatusReady) }

	a.tikzEditor.SetText(tikz.Placeholder)
	a.labelEditor.SingleLine = true
	a.labelEditor.Submit = true
	a.logList.Axis = layout.Vertical
	a.logList.ScrollToEnd = true

	for _, t := range circuit.ToolbarTypes {
		tb := &toolButton{typ: t}
		if data, ok := toolIcons[t]; ok {
			if icon, err := widget.NewIcon(data); err == nil {
				tb.icon = icon
			} else {
				log.Printf("ui: failed to load %s icon: %v", t, err)
			}
		}
		a.tools = append(a.tools, tb)
	}

	a.canvas.OnChange(func(ch circuit.Change) {
		a.tikzEditor.SetText(tikz.Generate(a.canvas))
		if ch.Kind == circuit.ChangeCleared {
			a.labelBound = false
		}
	})

	a.fileMenu = a.buildFileMenu()
	a.viewMenu = a.buildViewMenu()
	a.applyPalette()

	a.Logf("[INFO] CircuiTikZ Editor %s started", state.AppVersion())
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// dispatch applies a command to the canvas and keeps the status line in
// step with the armed type.
func (a *App) dispatch(cmd circuit.Command) error {
	_, wasArmed := a.canvas.Armed()
	if err := a.canvas.Dispatch(cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	switch cmd := cmd.(type) {
	case circuit.ArmType:
		a.state.SetStatus("Click to place " + strings.ToLower(cmd.Type.DisplayName()))
	case circuit.PlaceElement:
		if _, armed := a.canvas.Armed(); wasArmed && !armed {
			a.state.SetStatus(StatusReady)
		}
	}
	return nil
}

func (a *App) reportError(err error) {
	log.Printf("ui: %v", err)
	a.Logf("[ERROR] %v", err)
}

func (a *App) flash(msg string) {
	a.state.FlashStatus(msg, a.config.StatusTimeout())
	a.invalidate()
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// Logf appends a timestamped entry to the in-app log.
func (a *App) Logf(format string, args ...any) {
	prefix := time.Now().Format(time.Stamp)
	a.state.AppendLog(fmt.Sprintf("[%s] %s", prefix, fmt.Sprintf(format, args...)))
	a.invalidate()
}

func (a *App) newCircuit() {
	if err := a.dispatch(circuit.Clear{}); err != nil {
		a.reportError(err)
		return
	}
	a.flash("New circuit created")
}

func (a *App) quit() {
	a.window.Perform(system.ActionClose)
}

func (a *App) setDarkMode(dark bool) {
	a.config.Theme = renderer.ThemeLight.String()
	if dark {
		a.config.Theme = renderer.ThemeDark.String()
	}
	a.applyPalette()
	a.view.setTheme(renderer.ParseTheme(a.config.Theme))
	a.saveConfig()
}

func (a *App) setShowGrid(show bool) {
	a.config.ShowGrid = show
	a.view.opts.ShowGrid = show
	a.saveConfig()
}

func (a *App) saveConfig() {
	if err := SaveConfig(a.config); err != nil {
		a.Logf("[ERROR] Failed to save config: %v", err)
	}
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	if renderer.ParseTheme(a.config.Theme) == renderer.ThemeDark {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func (a *App) buildFileMenu() *menu.DropdownMenu {
	entries := []struct {
		label    string
		shortcut string
		action   func()
	}{
		{"New", "Ctrl+N", a.newCircuit},
		{"Open...", "Ctrl+O", a.openFile},
		{"Save...", "Ctrl+S", a.saveFile},
		{"Export TikZ...", "Ctrl+E", a.exportFile},
		{"Exit", "Ctrl+Q", a.quit},
	}
	opts := make([]menu.MenuOption, 0, len(entries))
	for _, e := range entries {
		entry := e
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				entry.action()
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				return menuRow(gtx, th, entry.label, entry.shortcut)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts[:4], opts[4:]})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func (a *App) buildViewMenu() *menu.DropdownMenu {
	opts := []menu.MenuOption{
		{
			OnClicked: func() error {
				a.setDarkMode(renderer.ParseTheme(a.config.Theme) != renderer.ThemeDark)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				label := "Dark theme"
				if renderer.ParseTheme(a.config.Theme) == renderer.ThemeDark {
					label = "Light theme"
				}
				return menuRow(gtx, th, label, "")
			},
		},
		{
			OnClicked: func() error {
				a.setShowGrid(!a.config.ShowGrid)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				label := "Show grid"
				if a.config.ShowGrid {
					label = "Hide grid"
				}
				return menuRow(gtx, th, label, "")
			},
		},
		{
			OnClicked: func() error {
				a.showLog = !a.showLog
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				label := "Show log"
				if a.showLog {
					label = "Hide log"
				}
				return menuRow(gtx, th, label, "")
			},
		},
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func menuRow(gtx layout.Context, th *theme.Theme, label, shortcut string) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, material.Body1(th.Theme, label).Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if shortcut == "" {
					return layout.Dimensions{}
				}
				lbl := material.Caption(th.Theme, shortcut)
				lbl.Color.A = 160
				return layout.Inset{Left: unit.Dp(16)}.Layout(gtx, lbl.Layout)
			}),
		)
	})
}

func (a *App) handleShortcuts(gtx layout.Context) {
	shortcuts := []struct {
		name   key.Name
		action func()
	}{
		{"N", a.newCircuit},
		{"O", a.openFile},
		{"S", a.saveFile},
		{"E", a.exportFile},
		{"Q", a.quit},
	}
	for _, sc := range shortcuts {
		for {
			ev, ok := gtx.Event(key.Filter{Name: sc.name, Required: key.ModShortcut})
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				sc.action()
			}
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.drainFileResults()
	a.handleShortcuts(gtx)

	snap := a.state.Snapshot()
	if !snap.StatusExpires.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: snap.StatusExpires})
	}

	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(a.layoutToolbar),
				layout.Flexed(1, a.layoutBody),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if !a.showLog {
						return layout.Dimensions{}
					}
					return a.layoutLogPane(gtx, snap.Logs)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.layoutStatusBar(gtx, snap)
				}),
			)
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			if snap.Warning == "" {
				return layout.Dimensions{}
			}
			return a.layoutWarning(gtx, snap.Warning)
		}),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	armed, isArmed := a.canvas.Armed()
	for _, tb := range a.tools {
		if tb.click.Clicked(gtx) {
			if err := a.dispatch(circuit.ArmType{Type: tb.typ}); err != nil {
				a.reportError(err)
			}
		}
	}

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutMenuButton(gtx, &a.fileMenuBtn, a.fileMenu, "File")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutMenuButton(gtx, &a.viewMenuBtn, a.viewMenu, "View")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
	}
	for _, tb := range a.tools {
		tb := tb
		active := isArmed && armed == tb.typ
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutToolButton(gtx, tb, active)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		)
	}
	children = append(children,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
		layout.Rigid(a.layoutLabelField),
	)

	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (a *App) layoutMenuButton(gtx layout.Context, btn *widget.Clickable, drop *menu.DropdownMenu, label string) layout.Dimensions {
	if btn.Clicked(gtx) {
		drop.ToggleVisibility(gtx)
	}
	b := material.Button(a.gvTheme.Theme, btn, label)
	b.Background = a.gvTheme.Bg2
	b.Color = a.gvTheme.Palette.Fg
	dims := b.Layout(gtx)
	drop.Layout(gtx, a.gvTheme)
	return dims
}

func (a *App) layoutToolButton(gtx layout.Context, tb *toolButton, active bool) layout.Dimensions {
	bg := a.gvTheme.Bg2
	fg := a.gvTheme.Palette.Fg
	if active {
		bg = a.gvTheme.Palette.ContrastBg
		fg = a.gvTheme.Palette.ContrastFg
	}
	btn := material.ButtonLayout(a.gvTheme.Theme, &tb.click)
	btn.Background = bg
	btn.CornerRadius = unit.Dp(4)
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if tb.icon == nil {
						return layout.Dimensions{}
					}
					size := gtx.Dp(unit.Dp(18))
					gtx.Constraints = layout.Exact(image.Pt(size, size))
					return tb.icon.Layout(gtx, fg)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(a.gvTheme.Theme, tb.typ.DisplayName())
					lbl.Color = fg
					return lbl.Layout(gtx)
				}),
			)
		})
	})
}

// layoutLabelField edits the label of the single selected element.
func (a *App) layoutLabelField(gtx layout.Context) layout.Dimensions {
	selected := a.canvas.Selected()
	single := len(selected) == 1
	if !single {
		if a.labelBound {
			a.labelEditor.SetText("")
		}
		a.labelBound = false
	} else if !a.labelBound || a.labelTarget != selected[0] {
		if el, ok := a.canvas.Element(selected[0]); ok {
			a.labelEditor.SetText(el.Label)
		}
		a.labelTarget = selected[0]
		a.labelBound = true
	}
	a.labelEditor.ReadOnly = !single

	for {
		ev, ok := a.labelEditor.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent, widget.SubmitEvent:
			if !a.labelBound {
				continue
			}
			cmd := circuit.SetLabel{ID: a.labelTarget, Label: a.labelEditor.Text()}
			if err := a.dispatch(cmd); err != nil {
				a.reportError(err)
			}
		}
	}

	width := gtx.Dp(unit.Dp(180))
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width
	hint := "Select one element"
	if single {
		hint = "Label"
	}
	return widget.Border{
		Color:        a.gvTheme.Bg2,
		Width:        unit.Dp(1),
		CornerRadius: unit.Dp(4),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			ed := material.Editor(a.gvTheme.Theme, &a.labelEditor, hint)
			ed.Color = a.gvTheme.Palette.Fg
			return ed.Layout(gtx)
		})
	})
}

// layoutBody splits the canvas and the markup pane 2:1.
func (a *App) layoutBody(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Flexed(2, a.view.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := image.Pt(gtx.Dp(unit.Dp(1)), gtx.Constraints.Max.Y)
			paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())
			return layout.Dimensions{Size: size}
		}),
		layout.Flexed(1, a.layoutMarkupPane),
	)
}

func (a *App) layoutMarkupPane(gtx layout.Context) layout.Dimensions {
	for {
		if _, ok := a.tikzEditor.Update(gtx); !ok {
			break
		}
	}
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		ed := material.Editor(a.gvTheme.Theme, &a.tikzEditor, "")
		ed.Font.Typeface = gfont.Typeface("Go Mono")
		ed.TextSize = unit.Sp(13)
		ed.Color = a.gvTheme.Palette.Fg
		return ed.Layout(gtx)
	})
}

func (a *App) layoutLogPane(gtx layout.Context, logs []string) layout.Dimensions {
	h := gtx.Dp(unit.Dp(140))
	gtx.Constraints.Min.Y = h
	gtx.Constraints.Max.Y = h
	size := image.Pt(gtx.Constraints.Max.X, h)
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())

	return layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return a.logList.Layout(gtx, len(logs), func(gtx layout.Context, i int) layout.Dimensions {
			lbl := material.Body2(a.gvTheme.Theme, logs[i])
			lbl.Font.Typeface = gfont.Typeface("Go Mono")
			lbl.Color = a.gvTheme.Palette.Fg
			return lbl.Layout(gtx)
		})
	})
}

func (a *App) layoutStatusBar(gtx layout.Context, snap StateSnapshot) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body2(a.gvTheme.Theme, snap.Status).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				info := fmt.Sprintf("%d elements  zoom %.0f%%", a.canvas.Len(), a.canvas.ZoomLevel()*100)
				if snap.FilePath != "" {
					info = snap.FilePath + "  " + info
				}
				lbl := material.Caption(a.gvTheme.Theme, info)
				lbl.Color = a.gvTheme.Palette.Fg
				return lbl.Layout(gtx)
			}),
		)
	})
}

// layoutWarning draws the blocking warning overlay.
func (a *App) layoutWarning(gtx layout.Context, msg string) layout.Dimensions {
	if a.warningOK.Clicked(gtx) {
		a.state.DismissWarning()
	}
	size := gtx.Constraints.Max
	scrim := color.NRGBA{A: 120}
	paint.FillShape(gtx.Ops, scrim, clip.Rect{Max: size}.Op())

	// Swallow input aimed at the widgets underneath.
	for {
		if _, ok := gtx.Event(pointer.Filter{
			Target: &a.warningScrim,
			Kinds:  pointer.Press | pointer.Release | pointer.Drag | pointer.Scroll,
		}); !ok {
			break
		}
	}
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, &a.warningScrim)
	area.Pop()

	gtx.Constraints.Min = size
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Point{}
		gtx.Constraints.Max.X = gtx.Dp(unit.Dp(360))
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				rr := gtx.Dp(unit.Dp(8))
				paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(material.H6(a.gvTheme.Theme, "Error").Layout),
						layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
						layout.Rigid(material.Body1(a.gvTheme.Theme, msg).Layout),
						layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
						layout.Rigid(material.Button(a.gvTheme.Theme, &a.warningOK, "OK").Layout),
					)
				})
			}),
		)
	})
}
