package reach

import (
	"github.com/katalvlaran/dfafactor/automaton"
)

// Analyzer runs reachability queries against one automaton, reusing its
// scratch buffers across calls.
type Analyzer struct {
	a    *automaton.Automaton
	opts Options

	marks []uint32 // marks[s] == epoch ⇔ s seen in the current query
	epoch uint32
	stack []automaton.State
	queue []automaton.State
	via   []automaton.Transition // via[s]: transition that discovered s (BFS only)
}

// New returns an Analyzer for a. All buffers are sized to a.Span() here and
// reused by every query; states past the span have no transitions, so a
// query starting there only tests the start state itself.
func New(a *automaton.Automaton, opts ...Option) (*Analyzer, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := a.Span()

	return &Analyzer{
		a:     a,
		opts:  o,
		marks: make([]uint32, n),
		stack: make([]automaton.State, 0, n),
		queue: make([]automaton.State, 0, n),
		via:   make([]automaton.Transition, n),
	}, nil
}

// FinalReachableFrom reports whether s is final or a final state can be
// reached from s.
func (r *Analyzer) FinalReachableFrom(s automaton.State) bool {
	return r.Reachable(s, r.a.IsFinal)
}

// ReachableFromInitial reports whether s is the initial state or can be
// reached from it.
func (r *Analyzer) ReachableFromInitial(s automaton.State) bool {
	if !r.inRange(s) {
		return false
	}

	return r.Reachable(r.a.Initial(), func(x automaton.State) bool { return x == s })
}

// Reachable reports whether some state satisfying goal can be reached from
// `from` via zero or more transitions. goal(from) is tested first.
//
// Steps:
//  1. Start a new epoch and push from.
//  2. Pop a state, fire OnVisit, test goal.
//  3. Push unmarked successors in reverse, so the first-declared one is
//     expanded next; mark on push so each state is expanded at most once.
//
// Complexity: O(V + E).
func (r *Analyzer) Reachable(from automaton.State, goal func(automaton.State) bool) bool {
	if !r.inRange(from) || goal == nil {
		return false
	}
	if !r.inSpan(from) {
		r.opts.OnVisit(from)
		return goal(from)
	}
	r.nextEpoch()

	r.stack = append(r.stack[:0], from)
	r.marks[from] = r.epoch
	var s, nxt automaton.State
	for len(r.stack) > 0 {
		s = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]

		r.opts.OnVisit(s)
		if goal(s) {
			return true
		}

		for i := r.a.SuccessorCount(s) - 1; i >= 0; i-- {
			nxt = r.a.SuccessorAt(s, i)
			if r.marks[nxt] != r.epoch {
				r.marks[nxt] = r.epoch
				r.stack = append(r.stack, nxt)
			}
		}
	}

	return false
}

// nextEpoch invalidates every mark in O(1); on wrap-around the marks are
// cleared once so stale stamps cannot alias the new epoch.
func (r *Analyzer) nextEpoch() {
	r.epoch++
	if r.epoch == 0 {
		clear(r.marks)
		r.epoch = 1
	}
}

func (r *Analyzer) inRange(s automaton.State) bool {
	return int64(s) < int64(r.a.StateCount())
}

func (r *Analyzer) inSpan(s automaton.State) bool {
	return int64(s) < int64(len(r.marks))
}
