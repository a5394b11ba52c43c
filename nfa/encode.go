package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteText writes m in the line format read by the visualization script.
//
// The first line is the number of states. Every other line is one
// transition, "<from> <to> <label>", with epsilon written as `\0`.
// States are compacted first; m itself is not modified.
func WriteText(w io.Writer, m *NFA) error {
	m = m.Clone()
	m.Compact()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", m.Accepting+1)
	for _, e := range m.Edges() {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, e.Label)
	}
	return bw.Flush()
}

// EncodeText returns the WriteText encoding of m.
func EncodeText(m *NFA) string {
	var b strings.Builder
	_ = WriteText(&b, m) // strings.Builder never fails
	return b.String()
}
