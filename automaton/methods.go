package automaton

// AlphabetSize returns the number of symbols, n ≤ MaxAlphabetSize.
func (a *Automaton) AlphabetSize() int { return a.alphabetSize }

// StateCount returns the number of states.
func (a *Automaton) StateCount() int { return a.stateCount }

// Initial returns the initial state.
func (a *Automaton) Initial() State { return a.initial }

// Span returns one past the largest state id that is initial, final or an
// endpoint of a transition. States in [Span(), StateCount()) have no
// transitions and are not final.
func (a *Automaton) Span() int { return len(a.finalSet) }

// TransitionCount returns the number of distinct transitions.
func (a *Automaton) TransitionCount() int { return len(a.transitions) }

// Alphabet returns the declared symbols in order, e.g. "abc" for size 3.
func (a *Automaton) Alphabet() string {
	buf := make([]byte, a.alphabetSize)
	for i := range buf {
		buf[i] = FirstSymbol + byte(i)
	}

	return string(buf)
}

// InAlphabet reports whether c is one of the declared symbols.
func (a *Automaton) InAlphabet(c byte) bool {
	return c >= FirstSymbol && int(c-FirstSymbol) < a.alphabetSize
}

// Finals returns a copy of the final states in declaration order.
func (a *Automaton) Finals() []State {
	out := make([]State, len(a.finals))
	copy(out, a.finals)

	return out
}

// IsFinal reports whether s is a final state. Out-of-range states are not final.
// Complexity: O(1).
func (a *Automaton) IsFinal(s State) bool {
	return a.inSpan(s) && a.finalSet[s]
}

// Transitions returns a copy of the transition relation in insertion order.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)

	return out
}

// Outgoing returns the transitions leaving s in insertion order.
// Complexity: O(out-degree).
func (a *Automaton) Outgoing(s State) []Transition {
	if !a.inSpan(s) {
		return nil
	}
	out := make([]Transition, len(a.outgoing[s]))
	for i, pos := range a.outgoing[s] {
		out[i] = a.transitions[pos]
	}

	return out
}

// Successors returns the distinct targets of transitions leaving s, ignoring
// symbols, in the order they were first declared.
func (a *Automaton) Successors(s State) []State {
	if !a.inSpan(s) {
		return nil
	}
	out := make([]State, len(a.successors[s]))
	copy(out, a.successors[s])

	return out
}

// EachOutgoing calls fn for every transition leaving s in insertion order.
func (a *Automaton) EachOutgoing(s State, fn func(Transition)) {
	if !a.inSpan(s) {
		return
	}
	for _, pos := range a.outgoing[s] {
		fn(a.transitions[pos])
	}
}

// SuccessorCount returns the number of distinct successors of s.
func (a *Automaton) SuccessorCount(s State) int {
	if !a.inSpan(s) {
		return 0
	}

	return len(a.successors[s])
}

// SuccessorAt returns the i-th distinct successor of s. It returns 0 when i
// is not in [0, SuccessorCount(s)).
func (a *Automaton) SuccessorAt(s State, i int) State {
	if i < 0 || i >= a.SuccessorCount(s) {
		return 0
	}

	return a.successors[s][i]
}

// Step follows the transition (s, symbol). ok is false when none exists.
// Complexity: O(1).
func (a *Automaton) Step(s State, symbol byte) (next State, ok bool) {
	pos, ok := a.index[key{from: s, symbol: symbol}]
	if !ok {
		return 0, false
	}

	return a.transitions[pos].To, true
}

// Run feeds word from the initial state and returns the state reached.
// ok is false as soon as a symbol has no transition.
func (a *Automaton) Run(word string) (State, bool) {
	return a.RunFrom(a.initial, word)
}

// RunFrom is Run starting at s.
func (a *Automaton) RunFrom(s State, word string) (State, bool) {
	if !a.valid(s) {
		return 0, false
	}
	cur := s
	var ok bool
	for i := 0; i < len(word); i++ {
		if cur, ok = a.Step(cur, word[i]); !ok {
			return 0, false
		}
	}

	return cur, true
}

// Accepts reports whether word is in the language of a.
func (a *Automaton) Accepts(word string) bool {
	s, ok := a.Run(word)

	return ok && a.IsFinal(s)
}

// valid reports whether s names a state of a.
func (a *Automaton) valid(s State) bool {
	return int64(s) < int64(a.stateCount)
}

func (a *Automaton) inSpan(s State) bool {
	return int64(s) < int64(len(a.finalSet))
}

// EachTransition calls fn for every transition in insertion order until fn
// returns false.
func (a *Automaton) EachTransition(fn func(Transition) bool) {
	for _, t := range a.transitions {
		if !fn(t) {
			return
		}
	}
}
