package circuit

import (
	"fmt"
	"strings"
)

// ElementType identifies the kind of a placed component.
type ElementType int

const (
	Resistor ElementType = iota
	Capacitor
	Inductor
	VoltageSource
	CurrentSource
	Ground
	Node

	numElementTypes
)

// Category is the output bucket an element is grouped under in the markup.
type Category int

const (
	CategoryResistors Category = iota
	CategoryCapacitors
	CategoryInductors
	CategorySources
	CategoryNodes
	CategoryGrounds
)

// Categories lists the buckets in the order they are emitted.
var Categories = []Category{
	CategoryResistors,
	CategoryCapacitors,
	CategoryInductors,
	CategorySources,
	CategoryNodes,
	CategoryGrounds,
}

// Comment returns the markup comment heading a bucket.
func (c Category) Comment() string {
	switch c {
	case CategoryResistors:
		return "% Resistors"
	case CategoryCapacitors:
		return "% Capacitors"
	case CategoryInductors:
		return "% Inductors"
	case CategorySources:
		return "% Sources"
	case CategoryNodes:
		return "% Nodes"
	case CategoryGrounds:
		return "% Ground connections"
	default:
		return "% Unknown"
	}
}

// typeInfo is the per-type descriptor. Adding an ElementType means adding a
// row here plus a case in Element.Render and Element.MarkupFragment.
type typeInfo struct {
	name         string
	displayName  string
	defaultLabel string
	category     Category
	twoTerminal  bool
	aliases      []string
}

var typeTable = [numElementTypes]typeInfo{
	Resistor: {
		name: "resistor", displayName: "Resistor", defaultLabel: "R",
		category: CategoryResistors, twoTerminal: true, aliases: []string{"r"},
	},
	Capacitor: {
		name: "capacitor", displayName: "Capacitor", defaultLabel: "C",
		category: CategoryCapacitors, twoTerminal: true, aliases: []string{"c"},
	},
	Inductor: {
		name: "inductor", displayName: "Inductor", defaultLabel: "L",
		category: CategoryInductors, twoTerminal: true, aliases: []string{"l"},
	},
	VoltageSource: {
		name: "voltage", displayName: "Voltage Source", defaultLabel: "V",
		category: CategorySources, twoTerminal: true, aliases: []string{"v", "vsource"},
	},
	CurrentSource: {
		name: "current", displayName: "Current Source", defaultLabel: "I",
		category: CategorySources, twoTerminal: true, aliases: []string{"i", "isource"},
	},
	Ground: {
		name: "ground", displayName: "Ground", defaultLabel: "",
		category: CategoryGrounds, aliases: []string{"gnd", "g"},
	},
	Node: {
		name: "node", displayName: "Node", defaultLabel: "",
		category: CategoryNodes, aliases: []string{"n", "circ"},
	},
}

// ElementTypes returns every element type in declaration order.
func ElementTypes() []ElementType {
	types := make([]ElementType, 0, numElementTypes)
	for t := ElementType(0); t < numElementTypes; t++ {
		types = append(types, t)
	}
	return types
}

// ToolbarTypes are the types offered as toolbar buttons. Node is reachable
// through its keyboard shortcut and scripts only.
var ToolbarTypes = []ElementType{
	Resistor, Capacitor, Inductor, VoltageSource, CurrentSource, Ground,
}

// Valid reports whether t is one of the declared element types.
func (t ElementType) Valid() bool {
	return t >= 0 && t < numElementTypes
}

func (t ElementType) info() typeInfo {
	if !t.Valid() {
		return typeInfo{name: "unknown", displayName: "Unknown"}
	}
	return typeTable[t]
}

// String returns the lower-case name used in scripts and logs.
func (t ElementType) String() string {
	return t.info().name
}

// DisplayName returns the human readable name shown in the UI.
func (t ElementType) DisplayName() string {
	return t.info().displayName
}

// DefaultLabel returns the label a freshly created element carries.
func (t ElementType) DefaultLabel() string {
	return t.info().defaultLabel
}

// Category returns the markup bucket for the type.
func (t ElementType) Category() Category {
	return t.info().category
}

// TwoTerminal reports whether the glyph has stubs to both box edges.
func (t ElementType) TwoTerminal() bool {
	return t.info().twoTerminal
}

// ParseElementType resolves a type name or alias, case-insensitively.
func ParseElementType(name string) (ElementType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t := ElementType(0); t < numElementTypes; t++ {
		info := typeTable[t]
		if key == info.name {
			return t, nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return t, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown element type %q", name)
}
