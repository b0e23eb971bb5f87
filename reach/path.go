package reach

import (
	"slices"

	"github.com/katalvlaran/dfafactor/automaton"
)

// ShortestPath returns the transitions of a fewest-hop path from `from` to
// the nearest state satisfying goal. The path is empty (and ok is true) when
// goal(from) holds already.
//
// Neighbors are enqueued in transition insertion order, so among equally
// short paths the one using earlier-declared transitions wins.
//
// Complexity: O(V + E).
func (r *Analyzer) ShortestPath(from automaton.State, goal func(automaton.State) bool) (path []automaton.Transition, ok bool) {
	if !r.inRange(from) || goal == nil {
		return nil, false
	}
	if !r.inSpan(from) {
		r.opts.OnVisit(from)
		if goal(from) {
			return []automaton.Transition{}, true
		}
		return nil, false
	}
	r.nextEpoch()

	r.queue = append(r.queue[:0], from)
	r.marks[from] = r.epoch
	var s automaton.State
	for head := 0; head < len(r.queue); head++ {
		s = r.queue[head]
		r.opts.OnVisit(s)
		if goal(s) {
			return r.unwind(from, s), true
		}
		r.a.EachOutgoing(s, func(t automaton.Transition) {
			if r.marks[t.To] != r.epoch {
				r.marks[t.To] = r.epoch
				r.via[t.To] = t
				r.queue = append(r.queue, t.To)
			}
		})
	}

	return nil, false
}

// unwind follows the via links from `to` back to `from`.
func (r *Analyzer) unwind(from, to automaton.State) []automaton.Transition {
	path := make([]automaton.Transition, 0)
	for cur := to; cur != from; cur = r.via[cur].From {
		path = append(path, r.via[cur])
	}
	slices.Reverse(path)

	return path
}
