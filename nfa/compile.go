package nfa

import (
	"fmt"

	"github.com/Ashish-Basetty/fungex/syntax"
)

// Compile builds an automaton that accepts exactly the strings matched by e.
//
// The result is compacted: its states are 0..n-1 and its
// accepting state is n-1.
//
// e must be a well-formed tree, like the ones syntax.Parse returns.
func Compile(e syntax.Expr) *NFA {
	switch e.Op {
	case syntax.OpChar:
		return compileChar(e.Rune)
	case syntax.OpStar:
		return compileStar(Compile(e.Args[0]))
	case syntax.OpConcat:
		return compileConcat(Compile(e.Args[0]), Compile(e.Args[1]))
	case syntax.OpAlt:
		return compileAlt(Compile(e.Args[0]), Compile(e.Args[1]))
	default:
		panic(fmt.Sprintf("unexpected %s expression", e.Op))
	}
}

func compileChar(c rune) *NFA {
	return &NFA{
		Initial:   0,
		Accepting: 1,
		Transitions: map[State][]Transition{
			0: {{Label: Label(c), To: 1}},
		},
	}
}

func compileStar(m *NFA) *NFA {
	n := State(m.Compact())

	oldInit, oldAcc := m.Initial, m.Accepting
	newInit, newAcc := n, n+1

	m.Initial = newInit
	m.Accepting = newAcc
	m.addTransition(oldAcc, Epsilon, oldInit)
	m.addTransition(oldAcc, Epsilon, newAcc)
	m.addTransition(newInit, Epsilon, oldInit)
	m.addTransition(newInit, Epsilon, newAcc)

	m.Compact()
	return m
}

// compileConcat drops m1's accepting state and
// redirects everything that entered it to m2's initial state.
func compileConcat(m1, m2 *NFA) *NFA {
	Separate(m1, m2)

	merge := func(s State) State {
		if s == m1.Accepting {
			return m2.Initial
		}
		return s
	}
	out := &NFA{
		Initial:     m1.Initial,
		Accepting:   m2.Accepting,
		Transitions: make(map[State][]Transition, len(m1.Transitions)+len(m2.Transitions)),
	}
	out.mergeFrom(m1, merge)
	out.mergeFrom(m2, nil)

	out.Compact()
	return out
}

// compileAlt drops m1's initial and accepting states
// in favor of m2's.
func compileAlt(m1, m2 *NFA) *NFA {
	Separate(m1, m2)

	merge := func(s State) State {
		switch s {
		case m1.Initial:
			return m2.Initial
		case m1.Accepting:
			return m2.Accepting
		default:
			return s
		}
	}
	out := &NFA{
		Initial:     m2.Initial,
		Accepting:   m2.Accepting,
		Transitions: make(map[State][]Transition, len(m1.Transitions)+len(m2.Transitions)),
	}
	out.mergeFrom(m1, merge)
	out.mergeFrom(m2, nil)

	out.Compact()
	return out
}

// mergeFrom appends the transitions of src to m, passing every
// source and target state through rename (if it is not nil).
// Transition lists of a shared source are concatenated, duplicates included.
func (m *NFA) mergeFrom(src *NFA, rename func(State) State) {
	if rename == nil {
		rename = func(s State) State { return s }
	}
	for _, s := range src.sources() {
		from := rename(s)
		for _, t := range src.Transitions[s] {
			m.addTransition(from, t.Label, rename(t.To))
		}
	}
}
