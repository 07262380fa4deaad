package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/LaBackDoor/fsm-extractor/internal/fsm"
)

// DOT writes a Graphviz representation of a machine: one digraph per
// function block, states as circular nodes and transitions as labeled
// edges. Composed with strings.Builder for the same reason Markdown is.
func DOT(out io.Writer, m *fsm.Machine) error {
	var b strings.Builder
	for i, fb := range m.FunctionBlocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		writeFunctionBlockDOT(&b, fb)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func writeFunctionBlockDOT(b *strings.Builder, fb *fsm.FunctionBlock) {
	fmt.Fprintf(b, "digraph \"%s\" {\n", fb.Name)
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=circle, style=filled, fillcolor=lightblue];\n")
	b.WriteString("    edge [fontsize=10];\n\n")

	for _, id := range fb.StateIDs() {
		fmt.Fprintf(b, "    \"%s\" [label=\"%s\"];\n", id, id)
	}
	b.WriteString("\n")

	for _, t := range fb.Transitions {
		label := strings.ReplaceAll(t.Guard, `"`, `\"`)
		label = strings.ReplaceAll(label, "\n", `\n`)
		fmt.Fprintf(b, "    \"%s\" -> \"%s\" [label=\"%s\"];\n", t.From, t.To, label)
	}
	b.WriteString("}")
}
