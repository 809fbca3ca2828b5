package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenizes canvas command scripts. Keywords are
// case-insensitive; element type names lex as identifiers and are resolved
// after parsing.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "KwArm", Pattern: `(?i)\barm\b`},
	{Name: "KwClick", Pattern: `(?i)\bclick\b`},
	{Name: "KwPlace", Pattern: `(?i)\bplace\b`},
	{Name: "KwAt", Pattern: `(?i)\bat\b`},
	{Name: "KwMove", Pattern: `(?i)\bmove\b`},
	{Name: "KwTo", Pattern: `(?i)\bto\b`},
	{Name: "KwLabel", Pattern: `(?i)\blabel\b`},
	{Name: "KwZoom", Pattern: `(?i)\bzoom\b`},
	{Name: "KwIn", Pattern: `(?i)\bin\b`},
	{Name: "KwOut", Pattern: `(?i)\bout\b`},
	{Name: "KwClear", Pattern: `(?i)\bclear\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
