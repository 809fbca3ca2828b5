// Package circuit holds the editable model behind the schematic canvas:
// placed elements, the snapping grid, selection and the armed placement type.
//
// The model does not import any GUI toolkit. Elements draw themselves onto a
// Surface (implemented with Gio in pkg/renderer) and describe themselves as
// circuitikz directives through MarkupFragment.
//
// # Overview
//
// The circuit package provides:
//   - ElementType: the closed set of placeable components
//   - Element: one placed component (type, snapped position, label)
//   - Canvas: the ordered element arena plus interaction state
//   - Command: explicit messages (ArmType, PlaceElement, Clear, Zoom, ...)
//     dispatched synchronously against a Canvas
//
// # Usage
//
//	c := circuit.NewCanvas()
//	c.ArmElementType(circuit.Resistor)
//	id, placed := c.HandlePrimaryClick(circuit.Pt(17, 3))
//	// placed == true, element id now sits at (20, 0)
//
//	for _, el := range c.Elements() {
//		fmt.Println(el.MarkupFragment())
//	}
package circuit
