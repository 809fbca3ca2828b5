package script

import (
	"fmt"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Run dispatches every command of s against c in order and stops at the
// first failure. The error names the script line that produced it.
func Run(s *Script, c *circuit.Canvas) error {
	for _, st := range s.Steps {
		for _, cmd := range st.Commands {
			if err := c.Dispatch(cmd); err != nil {
				return fmt.Errorf("line %d (%s): %w", st.Line, st.Source, err)
			}
		}
	}
	return nil
}

// RunString parses src and runs it against c.
func RunString(src string, c *circuit.Canvas) error {
	p, err := NewParser()
	if err != nil {
		return err
	}
	s, err := p.ParseString(src)
	if err != nil {
		return err
	}
	return Run(s, c)
}
