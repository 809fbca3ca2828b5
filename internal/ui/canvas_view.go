package ui

import (
	"image"
	"math"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/renderer"
)

// Keys that arm an element type while the canvas has focus.
var armKeys = []struct {
	name key.Name
	typ  circuit.ElementType
}{
	{"R", circuit.Resistor},
	{"C", circuit.Capacitor},
	{"L", circuit.Inductor},
	{"V", circuit.VoltageSource},
	{"I", circuit.CurrentSource},
	{"G", circuit.Ground},
	{"N", circuit.Node},
}

// canvasView is the interactive drawing area.
type canvasView struct {
	canvas *circuit.Canvas
	camera *renderer.Camera
	grid   *renderer.Grid
	colors *renderer.CanvasColors
	opts   renderer.RenderOptions

	in *interaction

	// onCancel runs when Escape is pressed on the focused canvas.
	onCancel func()
	// onError reports failed commands.
	onError func(error)
}

func newCanvasView(c *circuit.Canvas, dispatch func(circuit.Command) error, t renderer.Theme) *canvasView {
	cam := renderer.NewCamera(0, 0)
	colors := renderer.GetCanvasColors(t)
	return &canvasView{
		canvas: c,
		camera: cam,
		grid:   renderer.NewGrid(colors.Grid),
		colors: colors,
		opts:   renderer.DefaultRenderOptions(),
		in:     newInteraction(c, cam, dispatch),
	}
}

func (v *canvasView) setTheme(t renderer.Theme) {
	v.colors = renderer.GetCanvasColors(t)
	v.grid.SetColor(v.colors.Grid)
}

func (v *canvasView) report(err error) {
	if err != nil && v.onError != nil {
		v.onError(err)
	}
}

func (v *canvasView) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	v.camera.UpdateScreenSize(size.X, size.Y)
	v.in.pxPerUnit = float64(gtx.Metric.PxPerDp)
	if v.in.pxPerUnit <= 0 {
		v.in.pxPerUnit = 1
	}
	v.in.syncZoom()

	v.handleKeys(gtx)
	v.handlePointer(gtx)

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	if _, armed := v.canvas.Armed(); armed {
		pointer.CursorCrosshair.Add(gtx.Ops)
	}
	renderer.RenderCanvas(gtx, v.camera, v.canvas, v.grid, v.colors, v.opts)
	if band, ok := v.in.bandRect(); ok {
		renderer.RenderBand(gtx, v.camera, band, v.colors)
	}
	event.Op(gtx.Ops, v)
	area.Pop()

	return layout.Dimensions{Size: size}
}

func (v *canvasView) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x, y := float64(pev.Position.X), float64(pev.Position.Y)

		switch pev.Kind {
		case pointer.Press:
			gtx.Execute(key.FocusCmd{Tag: v})
			if pev.Buttons.Contain(pointer.ButtonPrimary) {
				v.report(v.in.primaryPress(x, y, pev.Modifiers.Contain(key.ModShift)))
			} else if pev.Buttons.Contain(pointer.ButtonSecondary) || pev.Buttons.Contain(pointer.ButtonTertiary) {
				v.in.secondaryPress(x, y)
			}
		case pointer.Drag:
			v.report(v.in.drag(x, y))
		case pointer.Release:
			v.report(v.in.release(x, y))
		case pointer.Cancel:
			v.in.cancel()
		case pointer.Scroll:
			// Wheel up zooms in.
			switch {
			case pev.Scroll.Y < 0:
				v.report(v.in.zoomAt(x, y, 1))
			case pev.Scroll.Y > 0:
				v.report(v.in.zoomAt(x, y, -1))
			}
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (v *canvasView) handleKeys(gtx layout.Context) {
	// Register as focusable so presses can take keyboard focus.
	for {
		if _, ok := gtx.Event(key.FocusFilter{Target: v}); !ok {
			break
		}
	}

	for _, k := range armKeys {
		for {
			ev, ok := gtx.Event(key.Filter{Focus: v, Name: k.name})
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				v.report(v.in.dispatch(circuit.ArmType{Type: k.typ}))
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Focus: v, Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			v.canvas.Disarm()
			v.canvas.ClearSelection()
			v.in.cancel()
			if v.onCancel != nil {
				v.onCancel()
			}
			gtx.Execute(op.InvalidateCmd{})
		}
	}

	center := image.Pt(v.camera.ScreenWidth/2, v.camera.ScreenHeight/2)
	zoomKeys := []struct {
		filter key.Filter
		steps  int
	}{
		{key.Filter{Focus: v, Name: "+", Optional: key.ModShift}, 1},
		{key.Filter{Focus: v, Name: "=", Optional: key.ModShift}, 1},
		{key.Filter{Focus: v, Name: "-"}, -1},
	}
	for _, zk := range zoomKeys {
		for {
			ev, ok := gtx.Event(zk.filter)
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				v.report(v.in.zoomAt(float64(center.X), float64(center.Y), zk.steps))
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}
}
