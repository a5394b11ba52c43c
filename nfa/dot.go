package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDot writes m as a Graphviz digraph, laid out left to right.
// The accepting state is drawn with a double circle and
// epsilon transitions are labeled ε.
func WriteDot(w io.Writer, m *NFA) error {
	m = m.Clone()
	n := m.Compact()

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph nfa {")
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tstart [shape=point, style=invis];")
	for s := 0; s < n; s++ {
		shape := "circle"
		if State(s) == m.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "\t%d [shape=%s];\n", s, shape)
	}
	fmt.Fprintf(bw, "\tstart -> %d;\n", m.Initial)
	for _, e := range m.Edges() {
		label := "ε"
		if e.Label != Epsilon {
			label = e.Label.String()
		}
		fmt.Fprintf(bw, "\t%d -> %d [label=%s];\n", e.From, e.To, strconv.Quote(label))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
