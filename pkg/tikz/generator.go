package tikz

import (
	"strings"

	"github.com/OpenTraceLab/CircuitTikZ/pkg/circuit"
)

// Wrapper directives around every generated circuit.
const (
	Header = `\begin{circuitikz}[scale=1.0]`
	Footer = `\end{circuitikz}`
)

// Placeholder is the text pane content before anything has been generated.
const Placeholder = "% TikZ code will appear here\n\\begin{circuitikz}\n\n\\end{circuitikz}"

const (
	emptyComment    = "% No elements in circuit"
	elementsComment = "% Circuit elements"
)

// connectionHint is appended when there is more than one element, as a
// starting point for the wires the editor does not model.
var connectionHint = []string{
	"% Example connections (manually adjust as needed)",
	`% \draw (0,0) to[R, l=$R_1$] (2,0) to[C, l=$C_1$] (4,0);`,
}

// Generate returns the circuitikz markup for the elements on c.
// Elements are grouped by category in a fixed order and keep their
// placement order within a group. A nil canvas yields only the wrapper
// directives. The output has no trailing newline.
func Generate(c *circuit.Canvas) string {
	if c == nil {
		return Header + "\n" + Footer
	}
	return GenerateElements(c.Elements())
}

// GenerateElements is Generate over an explicit element list.
func GenerateElements(elements []circuit.Element) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	if len(elements) == 0 {
		b.WriteString(emptyComment)
		b.WriteByte('\n')
		b.WriteString(Footer)
		return b.String()
	}

	b.WriteString(elementsComment)
	b.WriteByte('\n')

	buckets := make(map[circuit.Category][]*circuit.Element, len(circuit.Categories))
	for i := range elements {
		el := &elements[i]
		cat := el.Type.Category()
		buckets[cat] = append(buckets[cat], el)
	}

	for _, cat := range circuit.Categories {
		group := buckets[cat]
		if len(group) == 0 {
			continue
		}
		b.WriteString(cat.Comment())
		b.WriteByte('\n')
		for _, el := range group {
			b.WriteString(el.MarkupFragment())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if len(elements) > 1 {
		for _, line := range connectionHint {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(Footer)
	return b.String()
}
