package automaton

import (
	"errors"
	"fmt"
)

// MaxAlphabetSize is the largest supported alphabet: the lowercase letters a..z.
const MaxAlphabetSize = 26

// FirstSymbol is the first letter of every alphabet.
const FirstSymbol byte = 'a'

// Sentinel errors for automaton construction.
var (
	// ErrAlphabetTooLarge indicates an alphabet size above MaxAlphabetSize.
	ErrAlphabetTooLarge = errors.New("automaton: alphabet too large")

	// ErrNegativeSize indicates a negative alphabet size or state count.
	ErrNegativeSize = errors.New("automaton: negative size")

	// ErrStateOutOfRange indicates a state id ≥ StateCount().
	ErrStateOutOfRange = errors.New("automaton: state out of range")

	// ErrSymbolOutOfAlphabet indicates a transition symbol outside the declared alphabet.
	ErrSymbolOutOfAlphabet = errors.New("automaton: symbol out of alphabet")

	// ErrNonDeterministic indicates two transitions sharing (from, symbol)
	// with different targets.
	ErrNonDeterministic = errors.New("automaton: non-deterministic transition")

	// ErrDuplicateTransition indicates a transition identical to one already
	// present. It is informational: the builder stays usable.
	ErrDuplicateTransition = errors.New("automaton: duplicate transition")

	// ErrBuilderFrozen indicates a Builder used after Build.
	ErrBuilderFrozen = errors.New("automaton: builder already built")
)

// State identifies a state; valid ids are 0 .. StateCount()-1.
type State uint32

// Transition is one (from, symbol, to) triple of the transition relation.
type Transition struct {
	From   State
	Symbol byte
	To     State
}

// String renders t as "from symbol to", the same layout as the input format.
func (t Transition) String() string {
	return fmt.Sprintf("%d %c %d", t.From, t.Symbol, t.To)
}

// ConflictError reports a transition that collides with an existing one on
// (from, symbol). It wraps ErrNonDeterministic when the targets differ and
// ErrDuplicateTransition when the triples are identical.
type ConflictError struct {
	Existing Transition
	Rejected Transition
}

func (e *ConflictError) Error() string {
	if e.Existing == e.Rejected {
		return fmt.Sprintf("transition rule %s is a duplicate", e.Rejected)
	}

	return fmt.Sprintf("transition rule %s makes state machine non-deterministic: it collides with rule %s",
		e.Rejected, e.Existing)
}

// Unwrap classifies the conflict.
func (e *ConflictError) Unwrap() error {
	if e.Existing == e.Rejected {
		return ErrDuplicateTransition
	}

	return ErrNonDeterministic
}

// key indexes the transition relation by (from, symbol).
type key struct {
	from   State
	symbol byte
}

// Automaton is an immutable, validated DFA. Build one with Builder.
type Automaton struct {
	alphabetSize int
	stateCount   int
	initial      State

	finals   []State // as declared, duplicates kept
	finalSet []bool  // finalSet[s] == true iff s ∈ F

	transitions []Transition // arena, insertion order
	index       map[key]int  // (from, symbol) → position in transitions
	outgoing    [][]int      // outgoing[s] → positions in transitions, insertion order
	successors  [][]State    // successors[s] → distinct targets, first-seen order

	// finalSet, outgoing and successors cover states 0..Span()-1 only;
	// they grow with the largest referenced state, not with stateCount.
}
