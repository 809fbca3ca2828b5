package circuit

import "fmt"

// Command is a user intent applied to a Canvas. The GUI, the script runner
// and the tests all go through Dispatch so the canvas sees one code path.
type Command interface {
	Apply(c *Canvas) error
	String() string
}

// ArmType queues an element type for the next placement click.
type ArmType struct {
	Type ElementType
}

func (cmd ArmType) Apply(c *Canvas) error {
	if !cmd.Type.Valid() {
		return fmt.Errorf("arm: invalid element type %d", int(cmd.Type))
	}
	c.ArmElementType(cmd.Type)
	return nil
}

func (cmd ArmType) String() string { return "arm " + cmd.Type.String() }

// PlaceElement is a primary click at a scene point. Without an armed type it
// only updates the selection, like a click on the canvas would.
type PlaceElement struct {
	At Point
}

func (cmd PlaceElement) Apply(c *Canvas) error {
	if _, placed := c.HandlePrimaryClick(cmd.At); placed {
		return nil
	}
	if id, ok := c.HitTest(cmd.At); ok {
		c.Select(id)
	} else {
		c.ClearSelection()
	}
	return nil
}

func (cmd PlaceElement) String() string {
	return fmt.Sprintf("click %g %g", cmd.At.X, cmd.At.Y)
}

// MoveElement drags an element to a new (snapped) position.
type MoveElement struct {
	ID ElementID
	To Point
}

func (cmd MoveElement) Apply(c *Canvas) error {
	return c.MoveElement(cmd.ID, cmd.To)
}

func (cmd MoveElement) String() string {
	return fmt.Sprintf("move %d to %g %g", cmd.ID, cmd.To.X, cmd.To.Y)
}

// SetLabel renames an element.
type SetLabel struct {
	ID    ElementID
	Label string
}

func (cmd SetLabel) Apply(c *Canvas) error {
	return c.SetLabel(cmd.ID, cmd.Label)
}

func (cmd SetLabel) String() string {
	return fmt.Sprintf("label %d %q", cmd.ID, cmd.Label)
}

// Clear empties the canvas.
type Clear struct{}

func (Clear) Apply(c *Canvas) error {
	c.Clear()
	return nil
}

func (Clear) String() string { return "clear" }

// Zoom changes the view scale by a number of discrete steps; negative steps
// zoom out.
type Zoom struct {
	Steps int
}

func (cmd Zoom) Apply(c *Canvas) error {
	c.Zoom(cmd.Steps)
	return nil
}

func (cmd Zoom) String() string {
	if cmd.Steps < 0 {
		return fmt.Sprintf("zoom out %d", -cmd.Steps)
	}
	return fmt.Sprintf("zoom in %d", cmd.Steps)
}

// Dispatch applies cmd to the canvas.
func (c *Canvas) Dispatch(cmd Command) error {
	return cmd.Apply(c)
}
