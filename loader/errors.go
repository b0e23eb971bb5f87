package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dfafactor/automaton"
)

// Sentinel error kinds. Use errors.Is to classify a load failure.
var (
	// ErrMalformedInput indicates a missing or non-numeric token, or an
	// incomplete transition rule.
	ErrMalformedInput = errors.New("loader: malformed input")

	// ErrAlphabetTooLarge indicates an alphabet size above automaton.MaxAlphabetSize.
	ErrAlphabetTooLarge = errors.New("loader: alphabet too large")

	// ErrOutOfRange indicates a state id ≥ the declared state count.
	ErrOutOfRange = errors.New("loader: state out of range")

	// ErrOutOfAlphabet indicates a transition symbol outside the declared alphabet.
	ErrOutOfAlphabet = errors.New("loader: symbol out of alphabet")

	// ErrNonDeterministic indicates two transitions with the same origin and
	// symbol but different targets.
	ErrNonDeterministic = errors.New("loader: non-deterministic transition")

	// ErrDuplicateTransition classifies Warnings about repeated rules. It is
	// never returned as an error.
	ErrDuplicateTransition = errors.New("loader: duplicate transition")

	// ErrRead indicates that the underlying reader returned an error.
	ErrRead = errors.New("loader: read failed")
)

// Error is a fatal load failure with the stream position where it was detected.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Offset is the byte offset just past the last token consumed.
	Offset int64
	// Line is the 1-based line of that token.
	Line int
	// Msg describes the offending value(s).
	Msg string
	// Err is the underlying cause, if any (e.g. *automaton.ConflictError).
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s (line %d, pos. %d)", e.Kind, e.Msg, e.Line, e.Offset)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// Warning is a non-fatal finding; the rule it names was ignored.
type Warning struct {
	Kind       error
	Transition automaton.Transition
	Offset     int64
	Line       int
	Msg        string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (line %d, pos. %d)", w.Msg, w.Line, w.Offset)
}

// kindOf maps automaton sentinels onto loader kinds.
func kindOf(err error) error {
	switch {
	case errors.Is(err, automaton.ErrAlphabetTooLarge):
		return ErrAlphabetTooLarge
	case errors.Is(err, automaton.ErrStateOutOfRange):
		return ErrOutOfRange
	case errors.Is(err, automaton.ErrSymbolOutOfAlphabet):
		return ErrOutOfAlphabet
	case errors.Is(err, automaton.ErrNonDeterministic):
		return ErrNonDeterministic
	case errors.Is(err, automaton.ErrDuplicateTransition):
		return ErrDuplicateTransition
	default:
		return ErrMalformedInput
	}
}
