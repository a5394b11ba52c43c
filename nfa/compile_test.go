package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ashish-Basetty/fungex/syntax"
)

func TestCompileShapes(t *testing.T) {
	a, b := syntax.Char('a'), syntax.Char('b')
	eps := func(to State) Transition { return Transition{Label: Epsilon, To: to} }

	tests := []struct {
		name string
		expr syntax.Expr
		want *NFA
	}{
		{
			name: "char",
			expr: a,
			want: &NFA{
				Initial:   0,
				Accepting: 1,
				Transitions: map[State][]Transition{
					0: {{Label: 'a', To: 1}},
				},
			},
		},
		{
			name: "star",
			expr: syntax.Star(a),
			want: &NFA{
				Initial:   0,
				Accepting: 3,
				Transitions: map[State][]Transition{
					0: {eps(1), eps(3)},
					1: {{Label: 'a', To: 2}},
					2: {eps(1), eps(3)},
				},
			},
		},
		{
			name: "concat",
			expr: syntax.Concat(a, b),
			want: &NFA{
				Initial:   0,
				Accepting: 2,
				Transitions: map[State][]Transition{
					0: {{Label: 'a', To: 1}},
					1: {{Label: 'b', To: 2}},
				},
			},
		},
		{
			name: "or",
			expr: syntax.Or(a, b),
			want: &NFA{
				Initial:   0,
				Accepting: 1,
				Transitions: map[State][]Transition{
					0: {{Label: 'a', To: 1}, {Label: 'b', To: 1}},
				},
			},
		},
		{
			// Merged sources concatenate their lists, so the
			// same edge coming from both branches is kept twice.
			name: "or duplicate edge",
			expr: syntax.Or(a, a),
			want: &NFA{
				Initial:   0,
				Accepting: 1,
				Transitions: map[State][]Transition{
					0: {{Label: 'a', To: 1}, {Label: 'a', To: 1}},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Compile(test.expr))
		})
	}
}

func TestCompileInvariants(t *testing.T) {
	patterns := []string{
		`a`,
		`ab`,
		`abc`,
		`a|b|c`,
		`a*`,
		`a**`,
		`(ab)*`,
		`(a|b)*abb`,
		`a**|bcd*`,
		`(a*)|(bc)(d*)`,
		`((a|b)*c(d|e)*)*|f`,
		`x(y|z*)*w`,
	}

	for _, pattern := range patterns {
		m := compilePattern(t, pattern)
		n := m.NumStates()

		// Dense numbering with the accepting state last.
		states := m.States()
		for i, s := range states {
			assert.Equal(t, State(i), s, "pattern %q", pattern)
		}
		assert.Equal(t, State(0), m.Initial, "pattern %q", pattern)
		assert.Equal(t, State(n-1), m.Accepting, "pattern %q", pattern)
		assert.NotEqual(t, m.Initial, m.Accepting, "pattern %q", pattern)

		// Fragments are spliced by merging states, which is only
		// sound while nothing enters the initial state and nothing
		// leaves the accepting state.
		assert.Empty(t, m.Transitions[m.Accepting], "pattern %q", pattern)
		for _, e := range m.Edges() {
			assert.NotEqual(t, m.Initial, e.To, "pattern %q: edge %+v", pattern, e)
		}
	}
}

func TestCompileDoesNotAlias(t *testing.T) {
	// Compiling the same subtree twice must give independent automata.
	e := syntax.Star(syntax.Char('a'))
	m1 := Compile(e)
	m2 := Compile(e)
	m1.addTransition(m1.Initial, 'z', m1.Accepting)

	assert.NotEqual(t, m1, m2)
	assert.Equal(t, Compile(e), m2)
}

func TestCompileUnknownOp(t *testing.T) {
	assert.Panics(t, func() {
		Compile(syntax.Expr{Op: syntax.OpNone})
	})
}
