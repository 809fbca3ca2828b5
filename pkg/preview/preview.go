// Package preview draws a canvas to a vector or raster image without a
// window, using the same element glyphs the editor shows on screen.
package preview

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Format is an output encoding.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
)

// Margin around the drawn elements, in scene units.
const Margin = circuit.GridSpacing

// Label size in points. One scene unit is drawn as one point.
const labelPoints = 8

var (
	strokeColor    = color.Black
	highlightColor = color.NRGBA{R: 255, A: 255}
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case SVG, PNG, PDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported preview format %q", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Bounds returns the scene rectangle covering every element box plus Margin.
// An empty element list yields a single grid cell around the origin.
func Bounds(elements []circuit.Element) circuit.Rect {
	if len(elements) == 0 {
		return circuit.Rect{
			Min: circuit.Pt(-Margin, -Margin),
			Max: circuit.Pt(Margin, Margin),
		}
	}
	r := elements[0].Bounds()
	for _, el := range elements[1:] {
		b := el.Bounds()
		r.Min.X = math.Min(r.Min.X, b.Min.X)
		r.Min.Y = math.Min(r.Min.Y, b.Min.Y)
		r.Max.X = math.Max(r.Max.X, b.Max.X)
		r.Max.Y = math.Max(r.Max.Y, b.Max.Y)
	}
	r.Min = r.Min.Sub(circuit.Pt(Margin, Margin))
	r.Max = r.Max.Add(circuit.Pt(Margin, Margin))
	return r
}

// Render writes every element of c to w in format f. Selection is not drawn.
func Render(w io.Writer, c *circuit.Canvas, f Format) error {
	var elements []circuit.Element
	if c != nil {
		elements = c.Elements()
	}
	area := Bounds(elements)
	width, height := vg.Length(area.Dx()), vg.Length(area.Dy())

	var dst vg.CanvasWriterTo
	switch f {
	case SVG:
		dst = vgsvg.New(width, height)
	case PNG:
		dst = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	case PDF:
		dst = vgpdf.New(width, height)
	default:
		return fmt.Errorf("unsupported preview format %q", f)
	}

	Draw(dst, area, elements)
	if _, err := dst.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s preview: %w", f, err)
	}
	return nil
}

// Draw renders elements onto dst, mapping area to the canvas.
func Draw(dst vg.Canvas, area circuit.Rect, elements []circuit.Element) {
	s := NewSurface(dst, area)
	for i := range elements {
		elements[i].Render(s, false)
	}
}

var _ circuit.Surface = (*Surface)(nil)

// Surface adapts a vg.Canvas to circuit.Surface. Scene Y points down and
// vg Y points up, so points are flipped about the area.
type Surface struct {
	dst  vg.Canvas
	area circuit.Rect
	face font.Face
}

// NewSurface returns a surface drawing the scene rectangle area onto dst.
func NewSurface(dst vg.Canvas, area circuit.Rect) *Surface {
	return &Surface{
		dst:  dst,
		area: area,
		face: font.DefaultCache.Lookup(plot.DefaultFont, vg.Points(labelPoints)),
	}
}

func (s *Surface) pt(p circuit.Point) vg.Point {
	return vg.Point{
		X: vg.Length(p.X - s.area.Min.X),
		Y: vg.Length(s.area.Max.Y - p.Y),
	}
}

func (s *Surface) SetPen(p circuit.Pen) {
	s.dst.SetLineWidth(vg.Points(p.Width))
	if p.Highlight {
		s.dst.SetColor(highlightColor)
	} else {
		s.dst.SetColor(strokeColor)
	}
}

func (s *Surface) Line(a, b circuit.Point) {
	s.Polyline([]circuit.Point{a, b})
}

func (s *Surface) Polyline(pts []circuit.Point) {
	if len(pts) < 2 {
		return
	}
	var path vg.Path
	path.Move(s.pt(pts[0]))
	for _, p := range pts[1:] {
		path.Line(s.pt(p))
	}
	s.dst.Stroke(path)
}

// Arc keeps the on-screen direction: flipping Y turns scene angles into the
// same counter-clockwise angles in vg space.
func (s *Surface) Arc(center circuit.Point, radius, startDeg, sweepDeg float64) {
	s.dst.Stroke(s.arcPath(center, radius, startDeg, sweepDeg))
}

func (s *Surface) arcPath(center circuit.Point, radius, startDeg, sweepDeg float64) vg.Path {
	start := startDeg * math.Pi / 180
	c := s.pt(center)
	var path vg.Path
	path.Move(vg.Point{
		X: c.X + vg.Length(radius*math.Cos(start)),
		Y: c.Y + vg.Length(radius*math.Sin(start)),
	})
	path.Arc(c, vg.Length(radius), start, sweepDeg*math.Pi/180)
	return path
}

func (s *Surface) Circle(center circuit.Point, radius float64) {
	s.Arc(center, radius, 0, 360)
}

func (s *Surface) Dot(center circuit.Point, radius float64) {
	path := s.arcPath(center, radius, 0, 360)
	path.Close()
	s.dst.Fill(path)
}

// Text centers label in box.
func (s *Surface) Text(box circuit.Rect, label string) {
	if label == "" || s.face.Face == nil {
		return
	}
	ext := s.face.Extents()
	mid := s.pt(circuit.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2))
	at := vg.Point{
		X: mid.X - s.face.Width(label)/2,
		Y: mid.Y - (ext.Ascent-ext.Descent)/2,
	}
	s.dst.FillString(s.face, at, label)
}
