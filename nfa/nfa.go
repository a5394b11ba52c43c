// Package nfa implements nondeterministic finite automata over
// integer states, their construction from syntax trees,
// and subset simulation.
package nfa

import (
	"sort"
)

// State identifies an automaton state.
type State uint32

// Label is the input symbol a transition consumes.
type Label rune

// Epsilon labels a transition that consumes no input.
const Epsilon Label = 0

func (l Label) String() string {
	if l == Epsilon {
		return `\0`
	}
	return string(rune(l))
}

// Transition is an outgoing edge of some source state.
type Transition struct {
	Label Label
	To    State
}

// Edge is a Transition together with its source state.
type Edge struct {
	From  State
	To    State
	Label Label
}

// NFA is an automaton with a single initial and a single accepting state.
//
// Transitions maps a source state to its outgoing transitions, in order.
// The same (source, label) pair may lead to several states.
type NFA struct {
	Initial     State
	Accepting   State
	Transitions map[State][]Transition
}

// Clone returns a deep copy of m.
func (m *NFA) Clone() *NFA {
	out := &NFA{
		Initial:     m.Initial,
		Accepting:   m.Accepting,
		Transitions: make(map[State][]Transition, len(m.Transitions)),
	}
	for s, ts := range m.Transitions {
		out.Transitions[s] = append([]Transition(nil), ts...)
	}
	return out
}

// States returns every state m refers to, in ascending order.
func (m *NFA) States() []State {
	set := map[State]struct{}{
		m.Initial:   {},
		m.Accepting: {},
	}
	for s, ts := range m.Transitions {
		set[s] = struct{}{}
		for _, t := range ts {
			set[t.To] = struct{}{}
		}
	}
	states := make([]State, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// NumStates returns the number of distinct states m refers to.
func (m *NFA) NumStates() int { return len(m.States()) }

// Edges returns all transitions of m.
// Sources are in ascending order; the transitions of
// one source keep their order.
func (m *NFA) Edges() []Edge {
	var edges []Edge
	for _, s := range m.sources() {
		for _, t := range m.Transitions[s] {
			edges = append(edges, Edge{From: s, To: t.To, Label: t.Label})
		}
	}
	return edges
}

func (m *NFA) sources() []State {
	sources := make([]State, 0, len(m.Transitions))
	for s := range m.Transitions {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}

func (m *NFA) addTransition(from State, label Label, to State) {
	m.Transitions[from] = append(m.Transitions[from], Transition{Label: label, To: to})
}
