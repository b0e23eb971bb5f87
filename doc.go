// Package dfafactor answers one question about a deterministic finite
// automaton: does some accepted word contain a given symbol sequence as a
// contiguous factor?
//
// Formally, given a DFA A and a word w0, decide whether there exist w1, w2
// with w1·w0·w2 ∈ L(A). That holds iff there is a path
//
//	initial ─*→ S0 ─w0→ SN ─*→ final
//
// Subpackages, leaf-first:
//
//	automaton/ — immutable DFA model and the validating Builder
//	loader/    — text format parser: positions, typed errors, duplicate warnings
//	reach/     — label-free reachability (iterative DFS) and shortest labeled paths (BFS)
//	factor/    — the factor-existence Checker and witness words
//
// The command lives in cmd/dfafactor:
//
//	dfafactor <path> <word> [--verbose] [--format text|yaml] [--witness]
//
// where <word> is "-" for the empty factor. The last line printed is
// "Answer: yes." or "Answer: no."; load errors exit non-zero.
//
// Quick example, the language a(bb)*(a|c):
//
//	3            alphabet a..c
//	4            states 0..3
//	0            initial
//	1 3          one final state: 3
//	0 a 1
//	1 b 2
//	2 b 1
//	1 a 3
//	1 c 3
//
// "bb" and "abbbbc" are factors of accepted words; "aba" is not.
package dfafactor
