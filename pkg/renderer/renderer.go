package renderer

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// RenderOptions controls optional canvas layers.
type RenderOptions struct {
	ShowGrid   bool
	ShowOrigin bool
}

// DefaultRenderOptions enables every layer.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{ShowGrid: true, ShowOrigin: true}
}

// RenderCanvas paints the background, the grid, the origin marker and every
// element of c, back to front in placement order.
func RenderCanvas(gtx layout.Context, camera *Camera, c *circuit.Canvas, grid *Grid, colors *CanvasColors, opts RenderOptions) {
	paint.FillShape(gtx.Ops, colors.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())

	if opts.ShowGrid && grid != nil {
		grid.Draw(gtx, camera)
	}
	if opts.ShowOrigin {
		RenderOrigin(gtx, camera, colors)
	}
	if c == nil {
		return
	}

	surface := NewGioSurface(gtx, camera, colors)
	visible := camera.VisibleBounds()
	for _, el := range c.Elements() {
		if !el.Bounds().Intersects(visible) {
			continue
		}
		el.Render(surface, c.IsSelected(el.ID))
	}
}

// RenderBand draws the rubber band selection rectangle.
func RenderBand(gtx layout.Context, camera *Camera, band circuit.Rect, colors *CanvasColors) {
	x0, y0 := camera.WorldToScreen(band.Min)
	x1, y1 := camera.WorldToScreen(band.Max)
	r := image.Rect(int(x0), int(y0), int(x1), int(y1))
	paint.FillShape(gtx.Ops, colors.BandFill, clip.Rect(r).Op())

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x0), float32(y0)))
	path.LineTo(f32.Pt(float32(x1), float32(y0)))
	path.LineTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x0), float32(y1)))
	path.Close()
	paint.FillShape(gtx.Ops, colors.Band, clip.Stroke{
		Path:  path.End(),
		Width: 1,
	}.Op())
}
