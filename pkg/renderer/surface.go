package renderer

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Label font size in points at zoom 1.
const labelSize = 8.0

// Minimum stroke width in pixels so thin lines survive zooming out.
const minStroke = 1.0

// Segments used to flatten a full circle.
const circleSegments = 32

// Global theme for label text
var labelTheme = material.NewTheme()

func init() {
	labelTheme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
}

var _ circuit.Surface = (*GioSurface)(nil)

// GioSurface draws element glyphs into a Gio frame through a Camera.
type GioSurface struct {
	gtx    layout.Context
	camera *Camera
	colors *CanvasColors
	pen    circuit.Pen
}

// NewGioSurface returns a surface painting into gtx.
func NewGioSurface(gtx layout.Context, camera *Camera, colors *CanvasColors) *GioSurface {
	return &GioSurface{gtx: gtx, camera: camera, colors: colors}
}

func (s *GioSurface) SetPen(p circuit.Pen) { s.pen = p }

func (s *GioSurface) Line(a, b circuit.Point) {
	s.Polyline([]circuit.Point{a, b})
}

func (s *GioSurface) Polyline(pts []circuit.Point) {
	if len(pts) < 2 {
		return
	}
	var path clip.Path
	path.Begin(s.gtx.Ops)
	path.MoveTo(s.pt(pts[0]))
	for _, p := range pts[1:] {
		path.LineTo(s.pt(p))
	}
	s.stroke(path.End())
}

// Arc draws a circular arc. Angles are degrees counter-clockwise from
// three o'clock as seen on screen.
func (s *GioSurface) Arc(center circuit.Point, radius, startDeg, sweepDeg float64) {
	segments := int(math.Ceil(math.Abs(sweepDeg) / 360 * circleSegments))
	if segments < 4 {
		segments = 4
	}
	var path clip.Path
	path.Begin(s.gtx.Ops)
	for i := 0; i <= segments; i++ {
		a := (startDeg + sweepDeg*float64(i)/float64(segments)) * math.Pi / 180
		p := s.pt(circuit.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y - radius*math.Sin(a),
		})
		if i == 0 {
			path.MoveTo(p)
		} else {
			path.LineTo(p)
		}
	}
	s.stroke(path.End())
}

func (s *GioSurface) Circle(center circuit.Point, radius float64) {
	s.Arc(center, radius, 0, 360)
}

func (s *GioSurface) Dot(center circuit.Point, radius float64) {
	x, y := s.camera.WorldToScreen(center)
	r := math.Max(radius*s.camera.Zoom, 1)
	paint.FillShape(s.gtx.Ops, s.penColor(), clip.Ellipse{
		Min: image.Pt(int(x-r), int(y-r)),
		Max: image.Pt(int(math.Ceil(x+r)), int(math.Ceil(y+r))),
	}.Op(s.gtx.Ops))
}

// Text centers label inside box.
func (s *GioSurface) Text(box circuit.Rect, label string) {
	x0, y0 := s.camera.WorldToScreen(box.Min)
	x1, y1 := s.camera.WorldToScreen(box.Max)
	size := image.Pt(int(x1-x0), int(y1-y0))
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	defer op.Offset(image.Pt(int(x0), int(y0))).Push(s.gtx.Ops).Pop()

	gtx := s.gtx
	gtx.Constraints = layout.Exact(size)

	// Camera zoom is already in pixels; undo the metric scaling Sp applies.
	pxPerSp := s.gtx.Metric.PxPerSp
	if pxPerSp <= 0 {
		pxPerSp = 1
	}
	lbl := material.Label(labelTheme, unit.Sp(float32(labelSize*s.camera.Zoom)/pxPerSp), label)
	lbl.Color = s.colors.LabelText
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	layout.Center.Layout(gtx, lbl.Layout)
}

func (s *GioSurface) pt(p circuit.Point) f32.Point {
	x, y := s.camera.WorldToScreen(p)
	return f32.Pt(float32(x), float32(y))
}

func (s *GioSurface) penColor() color.NRGBA {
	if s.pen.Highlight {
		return s.colors.Selected
	}
	return s.colors.Element
}

func (s *GioSurface) stroke(spec clip.PathSpec) {
	width := math.Max(s.pen.Width*s.camera.Zoom, minStroke)
	paint.FillShape(s.gtx.Ops, s.penColor(), clip.Stroke{
		Path:  spec,
		Width: float32(width),
	}.Op())
}
