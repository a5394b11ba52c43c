package nfa

// Compact renames the states of m to 0..n-1 in order of first encounter
// and returns n.
//
// The initial state is encountered first and the accepting state last.
// In between, states are numbered by a breadth-first walk over the
// transition lists, starting at the initial state and then at every
// source state not reached yet, in ascending order.
// Compacting an already compacted automaton does not change it.
func (m *NFA) Compact() int {
	var next State
	mapping := m.numbering(&next)
	*m = *m.renamed(mapping)
	return len(mapping)
}

// Separate renames a to 0..na-1 and b to na..na+nb-1,
// so that the two automata have no state in common.
func Separate(a, b *NFA) {
	var next State
	ma := a.numbering(&next)
	mb := b.numbering(&next)
	*a = *a.renamed(ma)
	*b = *b.renamed(mb)
}

// numbering assigns next, next+1, ... to the states of m
// in encounter order, advancing next past the last one.
func (m *NFA) numbering(next *State) map[State]State {
	mapping := make(map[State]State, len(m.Transitions)+2)
	visit := func(s State) {
		if s == m.Accepting {
			return
		}
		if _, ok := mapping[s]; !ok {
			mapping[s] = *next
			*next++
		}
	}

	expanded := make(map[State]bool, len(m.Transitions))
	var queue []State
	walk := func(root State) {
		if expanded[root] {
			return
		}
		expanded[root] = true
		queue = append(queue[:0], root)
		for len(queue) != 0 {
			s := queue[0]
			queue = queue[1:]
			for _, t := range m.Transitions[s] {
				visit(t.To)
				if !expanded[t.To] {
					expanded[t.To] = true
					queue = append(queue, t.To)
				}
			}
		}
	}

	visit(m.Initial)
	walk(m.Initial)
	walk(m.Accepting)
	for _, s := range m.sources() {
		visit(s)
		walk(s)
	}

	mapping[m.Accepting] = *next
	*next++
	return mapping
}

func (m *NFA) renamed(mapping map[State]State) *NFA {
	out := &NFA{
		Initial:     mapping[m.Initial],
		Accepting:   mapping[m.Accepting],
		Transitions: make(map[State][]Transition, len(m.Transitions)),
	}
	for s, ts := range m.Transitions {
		renamed := make([]Transition, len(ts))
		for i, t := range ts {
			renamed[i] = Transition{Label: t.Label, To: mapping[t.To]}
		}
		out.Transitions[mapping[s]] = renamed
	}
	return out
}
