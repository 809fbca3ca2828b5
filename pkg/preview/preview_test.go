package preview

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

func place(c *circuit.Canvas, t circuit.ElementType, x, y float64) circuit.ElementID {
	c.ArmElementType(t)
	id, _ := c.HandlePrimaryClick(circuit.Pt(x, y))
	return id
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", SVG, false},
		{".PNG", PNG, false},
		{"pdf", PDF, false},
		{"tex", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if f, err := FormatFromPath("out/divider.svg"); err != nil || f != SVG {
		t.Errorf("FormatFromPath = %q, %v, want svg", f, err)
	}
}

func TestBounds(t *testing.T) {
	empty := Bounds(nil)
	if empty.Min != circuit.Pt(-Margin, -Margin) || empty.Max != circuit.Pt(Margin, Margin) {
		t.Errorf("empty bounds = %v, want one grid cell around the origin", empty)
	}

	c := circuit.NewCanvas()
	place(c, circuit.Resistor, 0, 0)
	place(c, circuit.Ground, 100, 60)
	got := Bounds(c.Elements())
	want := circuit.Rect{
		Min: circuit.Pt(-30-Margin, -15-Margin),
		Max: circuit.Pt(130+Margin, 75+Margin),
	}
	if got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestDrawPrimitives(t *testing.T) {
	c := circuit.NewCanvas()
	place(c, circuit.Resistor, 0, 0)
	place(c, circuit.Node, 40, 0)
	elements := c.Elements()

	var rec recorder.Canvas
	Draw(&rec, Bounds(elements), elements)

	var strokes, fills, texts int
	for _, a := range rec.Actions {
		switch a.(type) {
		case *recorder.Stroke:
			strokes++
		case *recorder.Fill:
			fills++
		case *recorder.FillString:
			texts++
		}
	}
	// Resistor: zigzag plus two stubs. Node: one filled dot.
	if strokes != 3 {
		t.Errorf("strokes = %d, want 3", strokes)
	}
	if fills != 1 {
		t.Errorf("fills = %d, want 1", fills)
	}
	// Only the resistor carries a label.
	if texts != 1 {
		t.Errorf("texts = %d, want 1", texts)
	}
}

func TestSurfaceFlipsY(t *testing.T) {
	var rec recorder.Canvas
	area := circuit.Rect{Min: circuit.Pt(-50, -50), Max: circuit.Pt(50, 50)}
	s := NewSurface(&rec, area)

	s.Line(circuit.Pt(-50, -50), circuit.Pt(50, 40))

	var stroke *recorder.Stroke
	for _, a := range rec.Actions {
		if st, ok := a.(*recorder.Stroke); ok {
			stroke = st
		}
	}
	if stroke == nil || len(stroke.Path) != 2 {
		t.Fatalf("expected one two-point stroke, got %+v", rec.Actions)
	}
	// Scene top-left is vg top-left: x=0, y=height.
	if got := stroke.Path[0].Pos; got != (vg.Point{X: 0, Y: 100}) {
		t.Errorf("start = %v, want (0,100)", got)
	}
	if got := stroke.Path[1].Pos; got != (vg.Point{X: 100, Y: 10}) {
		t.Errorf("end = %v, want (100,10)", got)
	}
}

func TestArcStartsOnCircle(t *testing.T) {
	var rec recorder.Canvas
	area := circuit.Rect{Min: circuit.Pt(0, 0), Max: circuit.Pt(100, 100)}
	s := NewSurface(&rec, area)

	s.Arc(circuit.Pt(50, 50), 10, 90, 180)

	st, ok := rec.Actions[len(rec.Actions)-1].(*recorder.Stroke)
	if !ok || len(st.Path) != 2 {
		t.Fatalf("expected move plus arc, got %+v", rec.Actions)
	}
	move, arc := st.Path[0], st.Path[1]
	if math.Abs(float64(move.Pos.X)-50) > 1e-9 || math.Abs(float64(move.Pos.Y)-60) > 1e-9 {
		t.Errorf("arc starts at %v, want (50,60)", move.Pos)
	}
	if arc.Type != vg.ArcComp || math.Abs(arc.Angle-math.Pi) > 1e-9 {
		t.Errorf("arc component = %+v, want a half turn", arc)
	}
}

func TestRenderSVG(t *testing.T) {
	c := circuit.NewCanvas()
	place(c, circuit.VoltageSource, 0, 0)
	place(c, circuit.Ground, 0, 60)

	var buf bytes.Buffer
	if err := Render(&buf, c, SVG); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not SVG:\n%.200s", out)
	}
	if !strings.Contains(out, "<path") {
		t.Errorf("SVG contains no paths")
	}
}

func TestRenderPNG(t *testing.T) {
	c := circuit.NewCanvas()
	place(c, circuit.Capacitor, 20, 20)

	var buf bytes.Buffer
	if err := Render(&buf, c, PNG); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("output does not start with the PNG signature")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, circuit.NewCanvas(), Format("bmp")); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}
