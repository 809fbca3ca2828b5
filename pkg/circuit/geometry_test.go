package circuit

import (
	"math"
	"testing"
)

func TestSnapToGrid(t *testing.T) {
	cases := []struct {
		in   Point
		want Point
	}{
		{Pt(0, 0), Pt(0, 0)},
		{Pt(17, 3), Pt(20, 0)},
		{Pt(9.99, 10), Pt(0, 20)},
		{Pt(-9, -11), Pt(0, -20)},
		{Pt(29.9, -30.1), Pt(20, -40)},
		{Pt(1234.5, -987.6), Pt(1240, -980)},
	}

	for _, tc := range cases {
		got := SnapToGrid(tc.in)
		if got != tc.want {
			t.Fatalf("SnapToGrid(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSnapToGridMultiplesAndIdempotent(t *testing.T) {
	for x := -101.0; x <= 101.0; x += 3.7 {
		for y := -57.0; y <= 57.0; y += 4.3 {
			p := SnapToGrid(Pt(x, y))
			if math.Mod(p.X, GridSpacing) != 0 || math.Mod(p.Y, GridSpacing) != 0 {
				t.Fatalf("SnapToGrid(%g,%g) = %v is not on the grid", x, y, p)
			}
			if again := SnapToGrid(p); again != p {
				t.Fatalf("SnapToGrid not idempotent: %v -> %v", p, again)
			}
		}
	}
}

func TestSnapToGridNoNegativeZero(t *testing.T) {
	p := SnapToGrid(Pt(-3, -4))
	if math.Signbit(p.X) || math.Signbit(p.Y) {
		t.Fatalf("SnapToGrid(-3,-4) = %v carries a negative zero", p)
	}
}

func TestRectFromPointsAndIntersects(t *testing.T) {
	r := RectFromPoints(Pt(10, 10), Pt(-10, -5))
	if r.Min != Pt(-10, -5) || r.Max != Pt(10, 10) {
		t.Fatalf("RectFromPoints normalized to %v, want min (-10,-5) max (10,10)", r)
	}
	if r.Dx() != 20 || r.Dy() != 15 {
		t.Fatalf("size = %gx%g, want 20x15", r.Dx(), r.Dy())
	}
	if !r.Contains(Pt(0, 0)) || r.Contains(Pt(11, 0)) {
		t.Fatalf("Contains gave wrong answers for %v", r)
	}
	other := Rect{Min: Pt(10, 10), Max: Pt(20, 20)}
	if !r.Intersects(other) {
		t.Fatalf("touching rectangles should intersect")
	}
	if r.Intersects(Rect{Min: Pt(11, 11), Max: Pt(20, 20)}) {
		t.Fatalf("disjoint rectangles should not intersect")
	}
}
