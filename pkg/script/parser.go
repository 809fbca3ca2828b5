package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Step is the commands produced by one script line.
type Step struct {
	Line     int
	Source   string
	Commands []circuit.Command
}

// Script is a parsed, validated command sequence ready to run.
type Script struct {
	Steps []Step
}

// Commands flattens the script into dispatch order.
func (s *Script) Commands() []circuit.Command {
	var cmds []circuit.Command
	for _, st := range s.Steps {
		cmds = append(cmds, st.Commands...)
	}
	return cmds
}

// Parser parses command scripts.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new script parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Map(unquoteLabel, "String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// unquoteLabel strips the quotes from a string token. Only \" is an escape;
// every other backslash is kept so LaTeX such as R_{\Omega} passes through.
func unquoteLabel(tok lexer.Token) (lexer.Token, error) {
	v := tok.Value
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return tok, fmt.Errorf("malformed string %s", v)
	}
	tok.Value = strings.ReplaceAll(v[1:len(v)-1], `\"`, `"`)
	return tok, nil
}

// Parse parses a script from a reader
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return compile(file)
}

// ParseString parses a script from a string
func (p *Parser) ParseString(input string) (*Script, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return compile(file)
}

// ParseFile parses a script from a file path
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// compile turns the syntax tree into canvas commands, resolving element
// type names.
func compile(file *File) (*Script, error) {
	s := &Script{}
	for _, stmt := range file.Statements {
		cmds, src, err := stmt.commands()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", stmt.Pos.Line, err)
		}
		s.Steps = append(s.Steps, Step{Line: stmt.Pos.Line, Source: src, Commands: cmds})
	}
	return s, nil
}

func (stmt *Statement) commands() ([]circuit.Command, string, error) {
	switch {
	case stmt.Arm != nil:
		t, err := circuit.ParseElementType(stmt.Arm.Type)
		if err != nil {
			return nil, "", err
		}
		cmd := circuit.ArmType{Type: t}
		return []circuit.Command{cmd}, cmd.String(), nil

	case stmt.Click != nil:
		cmd := circuit.PlaceElement{At: circuit.Pt(stmt.Click.X, stmt.Click.Y)}
		return []circuit.Command{cmd}, cmd.String(), nil

	case stmt.Place != nil:
		t, err := circuit.ParseElementType(stmt.Place.Type)
		if err != nil {
			return nil, "", err
		}
		src := fmt.Sprintf("place %s at %g %g", t, stmt.Place.X, stmt.Place.Y)
		return []circuit.Command{
			circuit.ArmType{Type: t},
			circuit.PlaceElement{At: circuit.Pt(stmt.Place.X, stmt.Place.Y)},
		}, src, nil

	case stmt.Move != nil:
		cmd := circuit.MoveElement{
			ID: circuit.ElementID(stmt.Move.ID),
			To: circuit.Pt(stmt.Move.X, stmt.Move.Y),
		}
		return []circuit.Command{cmd}, cmd.String(), nil

	case stmt.Label != nil:
		cmd := circuit.SetLabel{ID: circuit.ElementID(stmt.Label.ID), Label: stmt.Label.Text}
		return []circuit.Command{cmd}, cmd.String(), nil

	case stmt.Zoom != nil:
		steps := 1
		if stmt.Zoom.Steps != nil {
			steps = *stmt.Zoom.Steps
		}
		if steps < 0 {
			return nil, "", fmt.Errorf("zoom steps must not be negative, got %d", steps)
		}
		if strings.EqualFold(stmt.Zoom.Direction, "out") {
			steps = -steps
		}
		cmd := circuit.Zoom{Steps: steps}
		return []circuit.Command{cmd}, cmd.String(), nil

	case stmt.Clear != nil:
		cmd := circuit.Clear{}
		return []circuit.Command{cmd}, cmd.String(), nil
	}
	return nil, "", fmt.Errorf("empty statement")
}
