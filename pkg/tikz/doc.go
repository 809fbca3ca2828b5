// Package tikz turns a circuit canvas into circuitikz markup.
//
// Generate is a pure function of the canvas content: the same elements in
// the same order always produce byte-identical output. The file helpers move
// markup text between the editor pane and disk without interpreting it.
//
//	canvas := circuit.NewCanvas()
//	canvas.ArmElementType(circuit.Resistor)
//	canvas.HandlePrimaryClick(circuit.Pt(40, 0))
//	fmt.Println(tikz.Generate(canvas))
package tikz
