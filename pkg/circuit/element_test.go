package circuit

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewElementDefaults(t *testing.T) {
	want := map[ElementType]string{
		Resistor:      "R",
		Capacitor:     "C",
		Inductor:      "L",
		VoltageSource: "V",
		CurrentSource: "I",
		Ground:        "",
		Node:          "",
	}
	for _, typ := range ElementTypes() {
		el := NewElement(typ)
		if el.Position() != Pt(0, 0) {
			t.Errorf("NewElement(%s) position = %v, want origin", typ, el.Position())
		}
		if el.Label != want[typ] {
			t.Errorf("NewElement(%s) label = %q, want %q", typ, el.Label, want[typ])
		}
	}
}

func TestSetPositionSnaps(t *testing.T) {
	el := NewElement(Capacitor)
	el.SetPosition(Pt(31, -49))
	if got := el.Position(); got != Pt(40, -40) {
		t.Fatalf("Position() = %v, want (40,-40)", got)
	}
}

func TestMarkupFragment(t *testing.T) {
	cases := []struct {
		typ   ElementType
		at    Point
		label *string
		want  string
	}{
		{Resistor, Pt(17, 3), nil, `\draw (1.00,-0.00) to[R, l=$R$] ++(2,0);`},
		{Capacitor, Pt(40, 20), nil, `\draw (2.00,-1.00) to[C, l=$C$] ++(2,0);`},
		{Inductor, Pt(-60, -40), nil, `\draw (-3.00,2.00) to[L, l=$L$] ++(2,0);`},
		{VoltageSource, Pt(0, 0), nil, `\draw (0.00,-0.00) to[V, l=$V$] ++(0,-2);`},
		{CurrentSource, Pt(100, 100), nil, `\draw (5.00,-5.00) to[I, l=$I$] ++(0,-2);`},
		{Ground, Pt(20, 40), nil, `\node[ground] at (1.00,-2.00) {};`},
		{Node, Pt(-20, 0), nil, `\node[circ] at (-1.00,-0.00) {};`},
		{Resistor, Pt(0, 0), strPtr(""), `\draw (0.00,-0.00) to[R, l=$?$] ++(2,0);`},
		{Capacitor, Pt(0, 0), strPtr("C_1"), `\draw (0.00,-0.00) to[C, l=$C_1$] ++(2,0);`},
	}

	for _, tc := range cases {
		el := NewElement(tc.typ)
		el.SetPosition(tc.at)
		if tc.label != nil {
			el.Label = *tc.label
		}
		if got := el.MarkupFragment(); got != tc.want {
			t.Errorf("%s at %v: MarkupFragment() = %q, want %q", tc.typ, tc.at, got, tc.want)
		}
	}
}

func strPtr(s string) *string { return &s }

// recordingSurface captures draw calls as short strings.
type recordingSurface struct {
	pen   Pen
	calls []string
	texts []string
	pens  []Pen
}

func (r *recordingSurface) SetPen(p Pen) {
	r.pen = p
	r.pens = append(r.pens, p)
}

func (r *recordingSurface) Line(a, b Point) {
	r.calls = append(r.calls, fmt.Sprintf("line %g,%g-%g,%g", a.X, a.Y, b.X, b.Y))
}

func (r *recordingSurface) Polyline(pts []Point) {
	r.calls = append(r.calls, fmt.Sprintf("polyline %d", len(pts)))
}

func (r *recordingSurface) Arc(c Point, radius, start, sweep float64) {
	r.calls = append(r.calls, fmt.Sprintf("arc %g,%g r%g %g+%g", c.X, c.Y, radius, start, sweep))
}

func (r *recordingSurface) Circle(c Point, radius float64) {
	r.calls = append(r.calls, fmt.Sprintf("circle %g,%g r%g", c.X, c.Y, radius))
}

func (r *recordingSurface) Dot(c Point, radius float64) {
	r.calls = append(r.calls, fmt.Sprintf("dot %g,%g r%g", c.X, c.Y, radius))
}

func (r *recordingSurface) Text(box Rect, s string) {
	r.texts = append(r.texts, s)
}

func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func TestRenderGlyphs(t *testing.T) {
	cases := []struct {
		typ       ElementType
		polylines int
		lines     int
		arcs      int
		circles   int
		dots      int
	}{
		{Resistor, 1, 2, 0, 0, 0},
		{Capacitor, 0, 4, 0, 0, 0},
		{Inductor, 0, 2, 4, 0, 0},
		{VoltageSource, 0, 5, 0, 1, 0},
		{CurrentSource, 0, 5, 0, 1, 0},
		{Ground, 0, 4, 0, 0, 0},
		{Node, 0, 0, 0, 0, 1},
	}

	for _, tc := range cases {
		s := &recordingSurface{}
		NewElement(tc.typ).Render(s, false)
		got := [5]int{s.count("polyline"), s.count("line"), s.count("arc"), s.count("circle"), s.count("dot")}
		want := [5]int{tc.polylines, tc.lines, tc.arcs, tc.circles, tc.dots}
		if got != want {
			t.Errorf("%s: primitive counts %v, want %v (calls %v)", tc.typ, got, want, s.calls)
		}
	}
}

func TestRenderStubsReachBoxEdges(t *testing.T) {
	el := NewElement(Resistor)
	el.SetPosition(Pt(100, 40))
	s := &recordingSurface{}
	el.Render(s, false)

	want := []string{"line 70,40-82,40", "line 118,40-130,40"}
	for _, w := range want {
		found := false
		for _, c := range s.calls {
			if c == w {
				found = true
			}
		}
		if !found {
			t.Errorf("missing stub %q in %v", w, s.calls)
		}
	}
}

func TestRenderLabelAndSelection(t *testing.T) {
	s := &recordingSurface{}
	NewElement(Inductor).Render(s, true)
	if len(s.texts) != 1 || s.texts[0] != "L" {
		t.Fatalf("texts = %v, want [L]", s.texts)
	}
	if !s.pens[0].Highlight || s.pens[0].Width != penSelected {
		t.Fatalf("selected pen = %+v, want highlighted width %g", s.pens[0], penSelected)
	}

	s = &recordingSurface{}
	NewElement(Ground).Render(s, false)
	if len(s.texts) != 0 {
		t.Fatalf("ground drew label texts %v, want none", s.texts)
	}
	if s.pens[0].Highlight {
		t.Fatalf("unselected pen is highlighted")
	}
}

func TestBounds(t *testing.T) {
	el := NewElement(Node)
	el.SetPosition(Pt(40, -20))
	b := el.Bounds()
	if b.Min != Pt(10, -35) || b.Max != Pt(70, -5) {
		t.Fatalf("Bounds() = %v, want (10,-35)-(70,-5)", b)
	}
}

func TestParseElementType(t *testing.T) {
	cases := map[string]ElementType{
		"resistor":  Resistor,
		"R":         Resistor,
		"Capacitor": Capacitor,
		"l":         Inductor,
		"voltage":   VoltageSource,
		"isource":   CurrentSource,
		"GND":       Ground,
		"node":      Node,
	}
	for in, want := range cases {
		got, err := ParseElementType(in)
		if err != nil {
			t.Fatalf("ParseElementType(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseElementType(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseElementType("diode"); err == nil {
		t.Fatalf("ParseElementType(diode) should fail")
	}
}

func TestCategories(t *testing.T) {
	if VoltageSource.Category() != CategorySources || CurrentSource.Category() != CategorySources {
		t.Fatalf("sources must share a bucket")
	}
	if Ground.TwoTerminal() || Node.TwoTerminal() || !Resistor.TwoTerminal() {
		t.Fatalf("two-terminal flags wrong")
	}
	if CategoryGrounds.Comment() != "% Ground connections" {
		t.Fatalf("ground comment = %q", CategoryGrounds.Comment())
	}
}
