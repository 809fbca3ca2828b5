package circuit

import "math"

// GridSpacing is the distance between adjacent snap points in scene units.
// One grid step is one circuitikz unit in the generated markup.
const GridSpacing = 20.0

// Working area covered by the rendered grid. Placement itself is unbounded.
const (
	GridExtent = 1000.0
)

// Point is a position in scene coordinates. Y grows downward, as on screen.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in scene coordinates.
// Min is the top-left corner and Max the bottom-right one.
type Rect struct {
	Min Point
	Max Point
}

// RectFromPoints builds a normalized rectangle spanning a and b in any order.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// SnapToGrid returns the grid intersection nearest to p.
func SnapToGrid(p Point) Point {
	return Point{X: snap(p.X), Y: snap(p.Y)}
}

func snap(v float64) float64 {
	s := math.Round(v/GridSpacing) * GridSpacing
	// math.Round(-0.3) is -0; store a plain zero so the markup sign of an
	// element on an axis does not depend on which side it was dropped from.
	if s == 0 {
		return 0
	}
	return s
}
