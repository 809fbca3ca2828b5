package circuit

import (
	"errors"
	"fmt"
	"math"
)

// ZoomStep is the view scale factor applied per discrete zoom-in step.
const ZoomStep = 1.15

// ErrUnknownElement is returned when a command names an element ID the canvas
// does not hold.
var ErrUnknownElement = errors.New("unknown element")

// ChangeKind tells listeners what happened to the circuit.
type ChangeKind int

const (
	ChangePlaced ChangeKind = iota
	ChangeMoved
	ChangeRelabeled
	ChangeCleared
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePlaced:
		return "placed"
	case ChangeMoved:
		return "moved"
	case ChangeRelabeled:
		return "relabeled"
	case ChangeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change describes one circuit modification. ID is zero for ChangeCleared.
type Change struct {
	Kind ChangeKind
	ID   ElementID
}

// ChangeListener is called synchronously after the circuit changes.
type ChangeListener func(Change)

// Canvas owns the placed elements and the interaction state around them.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Canvas struct {
	elements []*Element
	index    map[ElementID]*Element
	nextID   ElementID

	armed    ElementType
	hasArmed bool

	zoom     float64
	selected map[ElementID]bool

	listeners []ChangeListener
}

// NewCanvas returns an empty canvas at zoom level 1.
func NewCanvas() *Canvas {
	return &Canvas{
		index:    make(map[ElementID]*Element),
		nextID:   1,
		zoom:     1.0,
		selected: make(map[ElementID]bool),
	}
}

// OnChange registers a listener for circuit changes.
func (c *Canvas) OnChange(l ChangeListener) {
	c.listeners = append(c.listeners, l)
}

func (c *Canvas) emit(ch Change) {
	for _, l := range c.listeners {
		l(ch)
	}
}

// ArmElementType queues t for the next primary click.
func (c *Canvas) ArmElementType(t ElementType) {
	c.armed = t
	c.hasArmed = true
}

// Disarm cancels a pending placement.
func (c *Canvas) Disarm() {
	c.hasArmed = false
}

// Armed returns the queued element type, if any.
func (c *Canvas) Armed() (ElementType, bool) {
	return c.armed, c.hasArmed
}

// HandlePrimaryClick places the armed element type at the grid point nearest
// to p. It reports false when nothing is armed, in which case the host applies
// its normal selection behavior.
func (c *Canvas) HandlePrimaryClick(p Point) (ElementID, bool) {
	if !c.hasArmed {
		return 0, false
	}
	el := NewElement(c.armed)
	el.ID = c.nextID
	c.nextID++
	el.SetPosition(p)

	c.elements = append(c.elements, el)
	c.index[el.ID] = el
	c.hasArmed = false

	c.emit(Change{Kind: ChangePlaced, ID: el.ID})
	return el.ID, true
}

// Len returns the number of placed elements.
func (c *Canvas) Len() int {
	return len(c.elements)
}

// Elements returns a copy of the placed elements in placement order.
func (c *Canvas) Elements() []Element {
	out := make([]Element, len(c.elements))
	for i, el := range c.elements {
		out[i] = *el
	}
	return out
}

// Element returns a copy of the element with the given ID.
func (c *Canvas) Element(id ElementID) (Element, bool) {
	el, ok := c.index[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

// MoveElement moves an element to the grid point nearest to p.
func (c *Canvas) MoveElement(id ElementID, p Point) error {
	el, ok := c.index[id]
	if !ok {
		return fmt.Errorf("move element %d: %w", id, ErrUnknownElement)
	}
	before := el.Position()
	el.SetPosition(p)
	if el.Position() != before {
		c.emit(Change{Kind: ChangeMoved, ID: id})
	}
	return nil
}

// SetLabel replaces an element's label.
func (c *Canvas) SetLabel(id ElementID, label string) error {
	el, ok := c.index[id]
	if !ok {
		return fmt.Errorf("set label of element %d: %w", id, ErrUnknownElement)
	}
	if el.Label == label {
		return nil
	}
	el.Label = label
	c.emit(Change{Kind: ChangeRelabeled, ID: id})
	return nil
}

// HitTest returns the topmost element whose box contains p. Later placements
// are drawn above earlier ones, so the search runs backwards.
func (c *Canvas) HitTest(p Point) (ElementID, bool) {
	for i := len(c.elements) - 1; i >= 0; i-- {
		if c.elements[i].Bounds().Contains(p) {
			return c.elements[i].ID, true
		}
	}
	return 0, false
}

// Select makes id the only selected element.
func (c *Canvas) Select(id ElementID) {
	c.ClearSelection()
	if _, ok := c.index[id]; ok {
		c.selected[id] = true
	}
}

// ToggleSelected adds or removes id from the selection.
func (c *Canvas) ToggleSelected(id ElementID) {
	if _, ok := c.index[id]; !ok {
		return
	}
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

// SelectWithin replaces the selection with every element intersecting r.
func (c *Canvas) SelectWithin(r Rect) {
	c.ClearSelection()
	for _, el := range c.elements {
		if el.Bounds().Intersects(r) {
			c.selected[el.ID] = true
		}
	}
}

// ClearSelection deselects everything.
func (c *Canvas) ClearSelection() {
	for id := range c.selected {
		delete(c.selected, id)
	}
}

// IsSelected reports whether id is selected.
func (c *Canvas) IsSelected(id ElementID) bool {
	return c.selected[id]
}

// Selected returns the selected IDs in placement order.
func (c *Canvas) Selected() []ElementID {
	var ids []ElementID
	for _, el := range c.elements {
		if c.selected[el.ID] {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

// Zoom scales the view by ZoomStep per positive step and by its reciprocal
// per negative step. The level is not clamped. It returns the new level.
func (c *Canvas) Zoom(steps int) float64 {
	if steps != 0 {
		c.zoom *= math.Pow(ZoomStep, float64(steps))
	}
	return c.zoom
}

// ZoomLevel returns the current view scale.
func (c *Canvas) ZoomLevel() float64 {
	return c.zoom
}

// Clear removes every element and the selection.
func (c *Canvas) Clear() {
	for i := range c.elements {
		c.elements[i] = nil
	}
	c.elements = c.elements[:0]
	for id := range c.index {
		delete(c.index, id)
	}
	c.ClearSelection()
	c.emit(Change{Kind: ChangeCleared})
}
