package script

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed script: a flat list of statements.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one command line.
type Statement struct {
	Pos lexer.Position

	Arm   *ArmStmt   `  @@`
	Click *ClickStmt `| @@`
	Place *PlaceStmt `| @@`
	Move  *MoveStmt  `| @@`
	Label *LabelStmt `| @@`
	Zoom  *ZoomStmt  `| @@`
	Clear *ClearStmt `| @@`
}

// ArmStmt: arm resistor
type ArmStmt struct {
	Type string `KwArm @Ident`
}

// ClickStmt: click 40 20
type ClickStmt struct {
	X float64 `KwClick @Number`
	Y float64 `@Number`
}

// PlaceStmt: place capacitor at 40 20
type PlaceStmt struct {
	Type string  `KwPlace @Ident`
	X    float64 `KwAt @Number`
	Y    float64 `@Number`
}

// MoveStmt: move 3 to 100 -40
type MoveStmt struct {
	ID int     `KwMove @Number`
	X  float64 `KwTo @Number`
	Y  float64 `@Number`
}

// LabelStmt: label 2 "R_1"
type LabelStmt struct {
	ID   int    `KwLabel @Number`
	Text string `@String`
}

// ZoomStmt: zoom in, zoom out 3
type ZoomStmt struct {
	Direction string `KwZoom @( KwIn | KwOut )`
	Steps     *int   `@Number?`
}

// ClearStmt: clear
type ClearStmt struct {
	Keyword string `@KwClear`
}
