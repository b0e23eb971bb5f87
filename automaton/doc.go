// Package automaton defines the immutable deterministic finite automaton
// (DFA) model used by the loader, reachability and factor packages.
//
// An Automaton A = (Σ, Q, q0, F, δ) is described by:
//
//   - Σ: the first AlphabetSize() lowercase letters, 'a' .. 'a'+n-1 (n ≤ 26)
//   - Q: states 0 .. StateCount()-1
//   - q0: Initial()
//   - F: Finals() (duplicates allowed, redundant)
//   - δ: Transitions(), at most one target per (from, symbol)
//
// Automata are produced only by Builder, which validates every invariant at
// insertion time:
//
//	b, err := automaton.NewBuilder(2, 2, 0)   // ErrAlphabetTooLarge, ErrStateOutOfRange
//	err = b.AddFinal(1)                       // ErrStateOutOfRange
//	err = b.AddTransition(automaton.Transition{From: 0, Symbol: 'a', To: 1})
//	a := b.Build()
//
// AddTransition reports a repeated triple as a *ConflictError wrapping
// ErrDuplicateTransition (non-fatal, nothing is inserted) and a triple that
// would break determinism as a *ConflictError wrapping ErrNonDeterministic.
//
// Storage:
//
//   - transitions live in one slice in insertion order (the arena)
//   - index[(from, symbol)] → arena position, O(1) Step and determinism checks
//   - per-state outgoing arena positions and distinct successor lists, used
//     by the reachability traversals
//
// Once built, an Automaton is never mutated, so it can be shared freely
// between goroutines. Accessors that return slices return copies.
package automaton
