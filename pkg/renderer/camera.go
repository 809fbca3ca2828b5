package renderer

import (
	"math"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Camera maps scene coordinates onto the canvas widget.
// Scene and screen both have Y growing downward, so there is no axis flip.
type Camera struct {
	// Scene point shown at the middle of the widget.
	CenterX float64
	CenterY float64

	// Zoom is screen pixels per scene unit. It is never clamped.
	Zoom float64

	ScreenWidth  int
	ScreenHeight int
}

// NewCamera returns a camera centered on the scene origin at zoom 1.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts a scene point to widget pixels.
func (c *Camera) WorldToScreen(p circuit.Point) (float64, float64) {
	x := (p.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (p.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToWorld converts widget pixels to a scene point.
func (c *Camera) ScreenToWorld(screenX, screenY float64) circuit.Point {
	x := (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX
	y := (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY
	return circuit.Point{X: x, Y: y}
}

// Pan moves the view by a screen pixel offset. Dragging right by dx shows
// what was to the left, so the center moves the opposite way.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt multiplies the zoom by factor, keeping the scene point under
// (screenX, screenY) fixed on screen.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	c.SetZoomAt(screenX, screenY, c.Zoom*factor)
}

// SetZoomAt sets an absolute zoom level anchored at a screen position.
// Non-positive or non-finite levels are ignored.
func (c *Camera) SetZoomAt(screenX, screenY, zoom float64) {
	if zoom <= 0 || math.IsInf(zoom, 0) || math.IsNaN(zoom) {
		return
	}
	anchor := c.ScreenToWorld(screenX, screenY)
	c.Zoom = zoom
	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += anchor.X - after.X
	c.CenterY += anchor.Y - after.Y
}

// UpdateScreenSize records the widget size for the current frame.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// VisibleBounds returns the scene rectangle covered by the widget.
func (c *Camera) VisibleBounds() circuit.Rect {
	return circuit.RectFromPoints(
		c.ScreenToWorld(0, 0),
		c.ScreenToWorld(float64(c.ScreenWidth), float64(c.ScreenHeight)),
	)
}
