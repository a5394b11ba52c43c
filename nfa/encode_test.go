package nfa

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`a`, "2\n0 1 a\n"},
		{`ab`, "3\n0 1 a\n1 2 b\n"},
		{`a|b`, "2\n0 1 a\n0 1 b\n"},
		{`a*`, "4\n0 1 \\0\n0 3 \\0\n1 2 a\n2 1 \\0\n2 3 \\0\n"},
	}

	for _, test := range tests {
		m := compilePattern(t, test.pattern)
		assert.Equal(t, test.want, EncodeText(m), "pattern %q", test.pattern)
	}
}

func TestEncodeTextCompacts(t *testing.T) {
	m := &NFA{
		Initial:   10,
		Accepting: 3,
		Transitions: map[State][]Transition{
			10: {{Label: 'x', To: 7}},
			7:  {{Label: Epsilon, To: 3}},
		},
	}
	orig := m.Clone()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, m))

	assert.Equal(t, "3\n0 1 x\n1 2 \\0\n", buf.String())
	assert.Equal(t, orig, m, "WriteText must not modify its argument")
}

func TestEncodeTextStateCount(t *testing.T) {
	// The first line is the state count the renderer draws nodes for.
	for _, pattern := range []string{`a`, `(a|b)*abb`, `a**|bcd*`} {
		m := compilePattern(t, pattern)
		lines := strings.Split(strings.TrimSuffix(EncodeText(m), "\n"), "\n")
		require.NotEmpty(t, lines)
		assert.Equal(t, len(m.Edges()), len(lines)-1, "pattern %q", pattern)
		assert.Equal(t, strconv.Itoa(m.NumStates()), lines[0], "pattern %q", pattern)
	}
}

func TestWriteDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDot(&buf, compilePattern(t, `a`)))

	want := strings.Join([]string{
		"digraph nfa {",
		"\trankdir=LR;",
		"\tstart [shape=point, style=invis];",
		"\t0 [shape=circle];",
		"\t1 [shape=doublecircle];",
		"\tstart -> 0;",
		"\t0 -> 1 [label=\"a\"];",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteDotEpsilon(t *testing.T) {
	var buf bytes.Buffer
	m := compilePattern(t, `a*`)
	require.NoError(t, WriteDot(&buf, m))

	out := buf.String()
	assert.Contains(t, out, "\t3 [shape=doublecircle];")
	assert.Contains(t, out, "\t0 -> 1 [label=\"ε\"];")
	assert.Contains(t, out, "\t1 -> 2 [label=\"a\"];")
	assert.Equal(t, len(m.Edges()), strings.Count(out, "[label="))
}
