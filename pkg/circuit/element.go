package circuit

import "fmt"

// Element box size in scene units. Glyphs are centered on the element
// position and span the full width with their connection stubs.
const (
	ElementWidth  = 60.0
	ElementHeight = 30.0
)

// Stroke widths used by Render.
const (
	penNormal   = 2.0
	penSelected = 3.0
	penDetail   = 1.0
)

// ElementID identifies an element for the lifetime of its canvas.
// IDs are never reused, even after Clear.
type ElementID int

// Element is one placed circuit component.
type Element struct {
	ID       ElementID
	Type     ElementType
	Label    string
	position Point
}

// NewElement creates an element at the origin carrying the type's default label.
func NewElement(t ElementType) *Element {
	return &Element{
		Type:  t,
		Label: t.DefaultLabel(),
	}
}

// Position returns the element's snapped scene position.
func (e *Element) Position() Point {
	return e.position
}

// SetPosition snaps p to the grid and stores it. It is the only way the
// position of an element changes.
func (e *Element) SetPosition(p Point) {
	e.position = SnapToGrid(p)
}

// Bounds returns the element's box in scene coordinates.
func (e *Element) Bounds() Rect {
	return Rect{
		Min: Point{X: e.position.X - ElementWidth/2, Y: e.position.Y - ElementHeight/2},
		Max: Point{X: e.position.X + ElementWidth/2, Y: e.position.Y + ElementHeight/2},
	}
}

// MarkupCoordinates converts the scene position to circuitikz units:
// one grid step per unit, Y pointing up.
func (e *Element) MarkupCoordinates() (x, y float64) {
	return e.position.X / GridSpacing, -e.position.Y / GridSpacing
}

// MarkupFragment returns the single circuitikz directive describing the element.
func (e *Element) MarkupFragment() string {
	x, y := e.MarkupCoordinates()
	at := FormatCoordinate(x, y)

	label := e.Label
	if label == "" {
		label = "?"
	}

	switch e.Type {
	case Resistor:
		return fmt.Sprintf("\\draw %s to[R, l=$%s$] ++(2,0);", at, label)
	case Capacitor:
		return fmt.Sprintf("\\draw %s to[C, l=$%s$] ++(2,0);", at, label)
	case Inductor:
		return fmt.Sprintf("\\draw %s to[L, l=$%s$] ++(2,0);", at, label)
	case VoltageSource:
		return fmt.Sprintf("\\draw %s to[V, l=$%s$] ++(0,-2);", at, label)
	case CurrentSource:
		return fmt.Sprintf("\\draw %s to[I, l=$%s$] ++(0,-2);", at, label)
	case Ground:
		return fmt.Sprintf("\\node[ground] at %s {};", at)
	case Node:
		return fmt.Sprintf("\\node[circ] at %s {};", at)
	default:
		return fmt.Sprintf("%% Unknown element at %s", at)
	}
}

// FormatCoordinate renders a markup coordinate pair with two decimals.
func FormatCoordinate(x, y float64) string {
	return fmt.Sprintf("(%.2f,%.2f)", x, y)
}

// Render draws the element glyph, its stubs and its label onto s.
func (e *Element) Render(s Surface, selected bool) {
	width := penNormal
	if selected {
		width = penSelected
	}
	pen := Pen{Width: width, Highlight: selected}
	s.SetPen(pen)

	o := e.position
	at := func(x, y float64) Point { return Point{X: o.X + x, Y: o.Y + y} }

	switch e.Type {
	case Resistor:
		w := ElementWidth * 0.6
		h := ElementHeight * 0.3
		step := w / 6
		pts := []Point{at(-w/2, 0)}
		for i := 0; i < 6; i++ {
			y := h / 2
			if i%2 == 0 {
				y = -h / 2
			}
			pts = append(pts, at(-w/2+float64(i)*step, y))
		}
		pts = append(pts, at(w/2, 0))
		s.Polyline(pts)
		e.stubs(s, w/2)

	case Capacitor:
		const gap = 4.0
		h := ElementHeight * 0.6
		s.Line(at(-gap/2, -h/2), at(-gap/2, h/2))
		s.Line(at(gap/2, -h/2), at(gap/2, h/2))
		e.stubs(s, gap/2)

	case Inductor:
		w := ElementWidth * 0.6
		const coils = 4
		coil := w / coils
		for i := 0; i < coils; i++ {
			cx := -w/2 + float64(i)*coil + coil/2
			s.Arc(at(cx, 0), coil/2, 0, 180)
		}
		e.stubs(s, w/2)

	case VoltageSource:
		r := ElementHeight * 0.4
		s.Circle(o, r)
		s.SetPen(Pen{Width: penDetail, Highlight: selected})
		s.Line(at(-r/2, 0), at(r/2, 0))
		s.Line(at(0, -r/2), at(0, r/2))
		s.Line(at(-r/4, 0), at(r/4, 0))
		s.SetPen(pen)
		e.stubs(s, r)

	case CurrentSource:
		r := ElementHeight * 0.4
		s.Circle(o, r)
		s.Line(at(-r/2, 0), at(r/2, 0))
		s.Line(at(r/4, -r/4), at(r/2, 0))
		s.Line(at(r/4, r/4), at(r/2, 0))
		e.stubs(s, r)

	case Ground:
		w := ElementWidth * 0.3
		s.Line(at(0, 0), at(0, ElementHeight/4))
		s.Line(at(-w/2, ElementHeight/4), at(w/2, ElementHeight/4))
		s.Line(at(-w/3, ElementHeight/3), at(w/3, ElementHeight/3))
		s.Line(at(-w/6, ElementHeight/2.5), at(w/6, ElementHeight/2.5))

	case Node:
		s.Dot(o, 3)
	}

	if e.Label != "" {
		s.Text(e.Bounds(), e.Label)
	}
}

// stubs connects a two-terminal glyph of half-width inner to both box edges.
func (e *Element) stubs(s Surface, inner float64) {
	o := e.position
	s.Line(Point{X: o.X - ElementWidth/2, Y: o.Y}, Point{X: o.X - inner, Y: o.Y})
	s.Line(Point{X: o.X + inner, Y: o.Y}, Point{X: o.X + ElementWidth/2, Y: o.Y})
}
