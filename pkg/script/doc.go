// Package script replays canvas edits from a text file, so circuits can be
// built and exported without the GUI.
//
// A script is a sequence of commands, one per line, with # comments:
//
//	# RC low-pass
//	place voltage at 0 0
//	place resistor at 40 -40
//	place capacitor at 120 0
//	place ground at 0 60
//	label 2 "R_1"
//	move 3 to 120 20
//	zoom in 2
//
// Keywords are case-insensitive. Element types accept their full names
// (resistor, capacitor, inductor, voltage, current, ground, node) and short
// forms (r, c, l, v, i, gnd, n). Element IDs are assigned from 1 in
// placement order.
//
// Usage:
//
//	p, err := script.NewParser()
//	s, err := p.ParseFile("rc.ctz")
//	canvas := circuit.NewCanvas()
//	err = script.Run(s, canvas)
package script
