// Package factor decides whether a symbol sequence w0 occurs as a
// contiguous factor of some word accepted by an automaton.Automaton, that is
// whether there are words w1, w2 with w1·w0·w2 in the language.
//
// Why it works:
//
//	w0 is a factor of an accepted word iff there is a path
//
//	    initial ─*→ S0 ─w0→ SN ─*→ final
//
//	so three independent checks are each necessary and together sufficient:
//	S0 is accessible, w0 can be traced from S0 to some SN, and SN is
//	co-accessible.
//
// Algorithm:
//
//   - w0 empty: the answer is whether the language is non-empty, i.e.
//     FinalReachableFrom(initial).
//   - otherwise every transition labeled w0[0] proposes its origin as S0
//     (each distinct S0 once, in transition insertion order). w0 is traced
//     from S0 over every matching transition with an explicit stack; every
//     complete trace ending in SN is accepted iff FinalReachableFrom(SN) and
//     ReachableFromInitial(S0).
//
// Symbols outside the alphabet never label a transition, so a w0 containing
// one is never a factor.
//
// Complexity:
//
//	O(k · (|w0| + V + E)) where k is the number of transitions labeled w0[0].
//
// Find returns a Witness: the states of the trace plus shortest prefix and
// suffix paths, from which Witness.Word rebuilds one accepted word that
// contains w0.
//
// A Checker wraps a reach.Analyzer and reuses its buffers; it is not safe for
// concurrent use.
package factor
