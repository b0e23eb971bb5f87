// Package reach answers label-free reachability questions over an
// automaton.Automaton: which states can be reached from which, ignoring the
// symbols on the transitions.
//
// What:
//
//   - FinalReachableFrom(s): s is final, or a final state is reachable from s
//     via one or more transitions (s is co-accessible).
//   - ReachableFromInitial(s): s is the initial state, or s is reachable from
//     it via one or more transitions (s is accessible).
//   - Reachable(from, goal): the shared depth-first primitive.
//   - ShortestPath(from, goal): breadth-first search returning the labeled
//     transitions of a fewest-hop path, used to build witness words.
//
// Traversal:
//
//	Both searches are iterative (explicit stack / queue), so deep automata
//	cannot exhaust the goroutine stack. Multi-edges between the same pair of
//	states count as one logical edge. Successors are explored in the order
//	their first transition was declared, which makes expansion order
//	reproducible; WithOnVisit exposes it.
//
// Memory:
//
//	An Analyzer allocates its visited marks, stack and queue once, sized to
//	Span(); states past it are isolated and need no marks. Marks are epoch-stamped, so starting a new query is O(1)
//	instead of clearing the array.
//
// Complexity (V = states, E = transitions):
//
//   - Reachable, FinalReachableFrom, ReachableFromInitial: O(V + E) time, O(1) allocations.
//   - ShortestPath: O(V + E) time, O(path) allocations.
//
// Errors:
//
//   - ErrAutomatonNil if New receives a nil automaton.
//
// Queries themselves are total: an out-of-range state is simply unreachable.
// An Analyzer carries scratch buffers and is not safe for concurrent use;
// create one per goroutine (the Automaton itself may be shared).
package reach
