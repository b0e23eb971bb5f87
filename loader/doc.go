// Package loader reads the textual description of a DFA from a character
// stream and returns a validated automaton.Automaton.
//
// Format (whitespace/newline separated, positional):
//
//	<alphabetSize>                       ≤ 26, symbols are 'a'..'a'+n-1
//	<stateCount>                         states are 0..stateCount-1
//	<initial>
//	<finalsCount> <final_1> ... <final_k>
//	<from> <symbol> <to>                 zero or more, until end of input
//	                                     or a token that is not a number
//
// Errors (all fatal, no automaton is returned):
//
//   - ErrMalformedInput    a header token is missing or not a number, a
//     started transition is incomplete or its target is not a number, or a
//     symbol token is not a single byte
//   - ErrAlphabetTooLarge  alphabetSize > 26
//   - ErrOutOfRange        initial, a final or a transition endpoint ≥ stateCount,
//     or stateCount > 4294967295. Numbers too large for 64 bits land here
//     (or in ErrAlphabetTooLarge), never in ErrMalformedInput
//   - ErrOutOfAlphabet     a transition symbol outside the declared alphabet
//   - ErrNonDeterministic  two transitions share (from, symbol) with different
//     targets; the message names both rules
//   - ErrRead              the underlying reader failed
//
// Every failure is an *Error carrying the byte offset just past the last
// token consumed and its line number. errors.Is matches both the loader
// kind and the automaton sentinel underneath it; errors.As reaches the
// *automaton.ConflictError of a determinism violation.
//
// A transition identical to an earlier one is dropped and reported as a
// Warning (kind ErrDuplicateTransition) through WithOnWarning and the
// configured slog.Logger; loading continues.
package loader
