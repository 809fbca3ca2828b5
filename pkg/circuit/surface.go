package circuit

// Pen describes how subsequent strokes are drawn.
type Pen struct {
	Width     float64 // stroke width in scene units
	Highlight bool    // draw in the selection color
}

// Surface is the drawing target elements render onto. All coordinates are
// scene coordinates; implementations map them to device space.
//
// Arc angles are in degrees, counter-clockwise as seen on screen, starting at
// the 3 o'clock direction.
type Surface interface {
	SetPen(p Pen)
	Line(a, b Point)
	Polyline(pts []Point)
	Arc(center Point, radius, startDeg, sweepDeg float64)
	Circle(center Point, radius float64)
	Dot(center Point, radius float64)
	Text(box Rect, s string)
}
