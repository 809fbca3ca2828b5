package ui

import (
	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
	"github.com/OpenTraceLab/CircuitTikZ/pkg/renderer"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragMove          // moving the selection
	dragBand          // rubber band selection
	dragPan           // panning the view
)

// interaction turns pointer gestures in widget pixels into canvas commands.
// It holds no Gio state so it can be driven directly from tests.
type interaction struct {
	canvas   *circuit.Canvas
	camera   *renderer.Camera
	dispatch func(circuit.Command) error

	// pxPerUnit is screen pixels per scene unit at canvas zoom 1.
	pxPerUnit float64

	mode    dragMode
	start   circuit.Point
	origins map[circuit.ElementID]circuit.Point
	band    circuit.Rect
	lastX   float64
	lastY   float64
}

func newInteraction(c *circuit.Canvas, cam *renderer.Camera, dispatch func(circuit.Command) error) *interaction {
	if dispatch == nil {
		dispatch = c.Dispatch
	}
	return &interaction{
		canvas:    c,
		camera:    cam,
		dispatch:  dispatch,
		pxPerUnit: 1,
	}
}

// syncZoom keeps the camera scale in step with the canvas zoom level, which
// scripts and keyboard shortcuts may change without a pointer position.
func (in *interaction) syncZoom() {
	want := in.canvas.ZoomLevel() * in.pxPerUnit
	if in.camera.Zoom != want {
		in.camera.SetZoomAt(float64(in.camera.ScreenWidth)/2, float64(in.camera.ScreenHeight)/2, want)
	}
}

// primaryPress handles a left click. With an armed type it places an
// element; otherwise it selects and starts a move or a rubber band.
// extend toggles the hit element instead of replacing the selection.
func (in *interaction) primaryPress(x, y float64, extend bool) error {
	p := in.camera.ScreenToWorld(x, y)
	in.mode = dragNone

	if _, armed := in.canvas.Armed(); armed {
		return in.dispatch(circuit.PlaceElement{At: p})
	}

	id, hit := in.canvas.HitTest(p)
	switch {
	case hit && extend:
		in.canvas.ToggleSelected(id)
		if !in.canvas.IsSelected(id) {
			return nil
		}
	case hit:
		if !in.canvas.IsSelected(id) {
			in.canvas.Select(id)
		}
	default:
		if !extend {
			in.canvas.ClearSelection()
		}
		in.mode = dragBand
		in.start = p
		in.band = circuit.RectFromPoints(p, p)
		return nil
	}

	in.mode = dragMove
	in.start = p
	in.origins = make(map[circuit.ElementID]circuit.Point)
	for _, sel := range in.canvas.Selected() {
		if el, ok := in.canvas.Element(sel); ok {
			in.origins[sel] = el.Position()
		}
	}
	return nil
}

// secondaryPress starts panning.
func (in *interaction) secondaryPress(x, y float64) {
	in.mode = dragPan
	in.lastX, in.lastY = x, y
}

func (in *interaction) drag(x, y float64) error {
	switch in.mode {
	case dragMove:
		delta := in.camera.ScreenToWorld(x, y).Sub(in.start)
		for _, id := range in.canvas.Selected() {
			origin, ok := in.origins[id]
			if !ok {
				continue
			}
			if err := in.dispatch(circuit.MoveElement{ID: id, To: origin.Add(delta)}); err != nil {
				return err
			}
		}
	case dragBand:
		in.band = circuit.RectFromPoints(in.start, in.camera.ScreenToWorld(x, y))
	case dragPan:
		in.camera.Pan(x-in.lastX, y-in.lastY)
		in.lastX, in.lastY = x, y
	}
	return nil
}

func (in *interaction) release(x, y float64) error {
	err := in.drag(x, y)
	if in.mode == dragBand {
		in.canvas.SelectWithin(in.band)
	}
	in.mode = dragNone
	in.origins = nil
	return err
}

func (in *interaction) cancel() {
	in.mode = dragNone
	in.origins = nil
}

// zoomAt zooms by steps keeping the scene point under (x, y) in place.
func (in *interaction) zoomAt(x, y float64, steps int) error {
	if steps == 0 {
		return nil
	}
	if err := in.dispatch(circuit.Zoom{Steps: steps}); err != nil {
		return err
	}
	in.camera.SetZoomAt(x, y, in.canvas.ZoomLevel()*in.pxPerUnit)
	return nil
}

// bandRect returns the rubber band while one is being dragged.
func (in *interaction) bandRect() (circuit.Rect, bool) {
	return in.band, in.mode == dragBand
}
