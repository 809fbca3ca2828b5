package renderer

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

const (
	gridLineWidth = 0.5 // scene units
	gridDash      = 1.0
	gridGap       = 3.0
	originHalf    = 10.0 // half length of the origin crosshair arms
	originWidth   = 2.0
)

// Grid paints the dotted snapping lattice over the working area. The lattice is
// recorded once in scene units and replayed under the camera transform, so
// panning and zooming do not rebuild it.
type Grid struct {
	color  color.NRGBA
	cache  op.Ops
	call   op.CallOp
	cached bool
}

// NewGrid returns a grid drawn in c.
func NewGrid(c color.NRGBA) *Grid {
	return &Grid{color: c}
}

// SetColor changes the lattice color, e.g. after a theme switch.
func (g *Grid) SetColor(c color.NRGBA) {
	if c != g.color {
		g.color = c
		g.cached = false
	}
}

func (g *Grid) record() {
	g.cache.Reset()
	macro := op.Record(&g.cache)

	var p clip.Path
	p.Begin(&g.cache)
	const ext = float32(circuit.GridExtent)
	spans := dashSpans(-ext, ext, gridDash, gridGap)
	for v := -ext; v <= ext; v += circuit.GridSpacing {
		for _, sp := range spans {
			p.MoveTo(f32.Pt(v, sp[0]))
			p.LineTo(f32.Pt(v, sp[1]))
			p.MoveTo(f32.Pt(sp[0], v))
			p.LineTo(f32.Pt(sp[1], v))
		}
	}
	paint.FillShape(&g.cache, g.color, clip.Stroke{
		Path:  p.End(),
		Width: gridLineWidth,
	}.Op())

	g.call = macro.Stop()
	g.cached = true
}

// dashSpans splits [from, to] into dash-long pieces separated by gap. The
// last piece is clipped at to.
func dashSpans(from, to, dash, gap float32) [][2]float32 {
	if dash <= 0 || to <= from {
		return nil
	}
	var spans [][2]float32
	for s := from; s < to; s += dash + gap {
		spans = append(spans, [2]float32{s, min(s+dash, to)})
	}
	return spans
}

// Draw replays the lattice through camera.
func (g *Grid) Draw(gtx layout.Context, camera *Camera) {
	if !g.cached {
		g.record()
	}
	defer op.Affine(sceneTransform(camera)).Push(gtx.Ops).Pop()
	g.call.Add(gtx.Ops)
}

// sceneTransform maps scene coordinates to widget pixels, matching
// Camera.WorldToScreen.
func sceneTransform(camera *Camera) f32.Affine2D {
	z := float32(camera.Zoom)
	tx := float32(float64(camera.ScreenWidth)/2 - camera.CenterX*camera.Zoom)
	ty := float32(float64(camera.ScreenHeight)/2 - camera.CenterY*camera.Zoom)
	return f32.Affine2D{}.Scale(f32.Pt(0, 0), f32.Pt(z, z)).Offset(f32.Pt(tx, ty))
}

// RenderOrigin draws the crosshair marking the scene origin.
func RenderOrigin(gtx layout.Context, camera *Camera, colors *CanvasColors) {
	s := NewGioSurface(gtx, camera, colors)
	s.colors = &CanvasColors{Element: colors.Origin, Selected: colors.Origin}
	s.SetPen(circuit.Pen{Width: originWidth})
	s.Line(circuit.Pt(-originHalf, 0), circuit.Pt(originHalf, 0))
	s.Line(circuit.Pt(0, -originHalf), circuit.Pt(0, originHalf))
}
