package automaton

import "fmt"

// Builder accumulates finals and transitions, validating each one as it is
// added. A Builder that returned a fatal error should be discarded: callers
// never get an Automaton for a description that failed validation.
type Builder struct {
	a      *Automaton
	seen   []map[State]struct{} // seen[s] dedups successors[s]
	frozen bool
}

// NewBuilder starts an automaton over the first alphabetSize letters with
// states 0..stateCount-1 and the given initial state.
//
// Errors:
//   - ErrNegativeSize if alphabetSize or stateCount is negative.
//   - ErrAlphabetTooLarge if alphabetSize > MaxAlphabetSize.
//   - ErrStateOutOfRange if initial ≥ stateCount.
//
// Per-state tables start at initial+1 entries and grow with the largest state
// referenced later, so a large stateCount with few referenced states stays
// cheap.
func NewBuilder(alphabetSize, stateCount int, initial State) (*Builder, error) {
	if alphabetSize < 0 || stateCount < 0 {
		return nil, ErrNegativeSize
	}
	if alphabetSize > MaxAlphabetSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrAlphabetTooLarge, alphabetSize, MaxAlphabetSize)
	}
	if int64(initial) >= int64(stateCount) {
		return nil, fmt.Errorf("%w: initial state %d >= %d", ErrStateOutOfRange, initial, stateCount)
	}

	b := &Builder{
		a: &Automaton{
			alphabetSize: alphabetSize,
			stateCount:   stateCount,
			initial:      initial,
			index:        make(map[key]int),
		},
	}
	b.reserve(initial)

	return b, nil
}

// reserve grows the per-state tables to cover s.
func (b *Builder) reserve(s State) {
	n := int(s) + 1
	a := b.a
	a.finalSet = extend(a.finalSet, n)
	a.outgoing = extend(a.outgoing, n)
	a.successors = extend(a.successors, n)
	b.seen = extend(b.seen, n)
}

func extend[T any](s []T, n int) []T {
	if n <= len(s) {
		return s
	}

	return append(s, make([]T, n-len(s))...)
}

// AddFinal marks s as a final state. Repeats are recorded as declared.
func (b *Builder) AddFinal(s State) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	if !b.a.valid(s) {
		return fmt.Errorf("%w: final state %d >= %d", ErrStateOutOfRange, s, b.a.stateCount)
	}
	b.reserve(s)
	b.a.finals = append(b.a.finals, s)
	b.a.finalSet[s] = true

	return nil
}

// AddTransition inserts t after checking, in order: state bounds, alphabet
// membership, determinism.
//
// A triple identical to an existing one is not inserted and is reported as a
// *ConflictError wrapping ErrDuplicateTransition; the builder stays usable.
// A triple sharing (from, symbol) with a different target is reported as a
// *ConflictError wrapping ErrNonDeterministic.
//
// Complexity: O(1) amortized.
func (b *Builder) AddTransition(t Transition) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	a := b.a
	// 1) bounds
	if !a.valid(t.From) || !a.valid(t.To) {
		return fmt.Errorf("%w: transition rule %s references invalid state, both must be < %d",
			ErrStateOutOfRange, t, a.stateCount)
	}
	// 2) alphabet
	if !a.InAlphabet(t.Symbol) {
		return fmt.Errorf("%w: transition rule %s uses %q outside %q",
			ErrSymbolOutOfAlphabet, t, t.Symbol, a.Alphabet())
	}
	// 3) determinism
	k := key{from: t.From, symbol: t.Symbol}
	if pos, ok := a.index[k]; ok {
		return &ConflictError{Existing: a.transitions[pos], Rejected: t}
	}

	b.reserve(max(t.From, t.To))
	pos := len(a.transitions)
	a.transitions = append(a.transitions, t)
	a.index[k] = pos
	a.outgoing[t.From] = append(a.outgoing[t.From], pos)

	// multi-edges between one pair collapse into one logical edge
	if b.seen[t.From] == nil {
		b.seen[t.From] = make(map[State]struct{})
	}
	if _, dup := b.seen[t.From][t.To]; !dup {
		b.seen[t.From][t.To] = struct{}{}
		a.successors[t.From] = append(a.successors[t.From], t.To)
	}

	return nil
}

// Build freezes the builder and returns the finished Automaton.
// Subsequent calls to any Builder method return ErrBuilderFrozen (AddFinal,
// AddTransition) or the same Automaton (Build).
func (b *Builder) Build() *Automaton {
	if !b.frozen {
		b.frozen = true
		b.seen = nil
	}

	return b.a
}
