package nfa

// MatchString reports whether m accepts the whole of s.
//
// MatchString only reads m, so it may be called from
// several goroutines at once.
func (m *NFA) MatchString(s string) bool {
	current := newStateSet()
	current.add(m.Initial)
	m.closure(current)

	next := newStateSet()
	for _, ch := range s {
		if current.empty() {
			return false
		}
		m.step(current, next, Label(ch))
		m.closure(next)
		current, next = next, current
	}

	return current.has(m.Accepting)
}

// closure extends set with every state reachable from it
// by epsilon transitions.
func (m *NFA) closure(set *stateSet) {
	queue := append([]State(nil), set.dense...)
	for len(queue) != 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range m.Transitions[s] {
			if t.Label != Epsilon || set.has(t.To) {
				continue
			}
			set.add(t.To)
			queue = append(queue, t.To)
		}
	}
}

// step replaces next with the states reachable from current
// by one transition labeled ch.
func (m *NFA) step(current, next *stateSet, ch Label) {
	next.clear()
	if ch == Epsilon {
		// No input symbol consumes an epsilon transition.
		return
	}
	for _, s := range current.dense {
		for _, t := range m.Transitions[s] {
			if t.Label == ch {
				next.add(t.To)
			}
		}
	}
}

// stateSet is a set of states that remembers insertion order.
type stateSet struct {
	dense []State
	index map[State]struct{}
}

func newStateSet() *stateSet {
	return &stateSet{index: make(map[State]struct{})}
}

func (set *stateSet) add(s State) {
	if _, ok := set.index[s]; ok {
		return
	}
	set.index[s] = struct{}{}
	set.dense = append(set.dense, s)
}

func (set *stateSet) has(s State) bool {
	_, ok := set.index[s]
	return ok
}

func (set *stateSet) empty() bool { return len(set.dense) == 0 }

func (set *stateSet) clear() {
	set.dense = set.dense[:0]
	for s := range set.index {
		delete(set.index, s)
	}
}
