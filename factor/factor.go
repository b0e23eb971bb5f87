package factor

import (
	"errors"
	"strings"

	"github.com/katalvlaran/dfafactor/automaton"
	"github.com/katalvlaran/dfafactor/reach"
)

// ErrAutomatonNil is returned when New receives a nil automaton.
var ErrAutomatonNil = errors.New("factor: automaton is nil")

// Witness describes one accepting path through which w0 is a factor.
type Witness struct {
	// Start is S0, where the factor begins.
	Start automaton.State
	// End is SN, where the factor ends.
	End automaton.State
	// Trace lists the states visited while reading w0, Start first, End last.
	Trace []automaton.State
	// Prefix is a shortest path initial ─*→ Start.
	Prefix []automaton.Transition
	// Suffix is a shortest path End ─*→ some final state.
	Suffix []automaton.Transition
}

// Word returns w1 + w0 + w2, the accepted word spelled by the witness.
func (w Witness) Word(w0 string) string {
	var sb strings.Builder
	sb.Grow(len(w.Prefix) + len(w0) + len(w.Suffix))
	for _, t := range w.Prefix {
		sb.WriteByte(t.Symbol)
	}
	sb.WriteString(w0)
	for _, t := range w.Suffix {
		sb.WriteByte(t.Symbol)
	}

	return sb.String()
}

// Checker answers factor-existence queries for one automaton.
type Checker struct {
	a     *automaton.Automaton
	r     *reach.Analyzer
	stack []frame
}

// frame is one pending step of a trace: the state reached after depth symbols.
type frame struct {
	state automaton.State
	depth int
}

// New returns a Checker for a. Options are forwarded to the underlying
// reach.Analyzer.
func New(a *automaton.Automaton, opts ...reach.Option) (*Checker, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	r, err := reach.New(a, opts...)
	if err != nil {
		return nil, err
	}

	return &Checker{a: a, r: r}, nil
}

// Exists reports whether some accepted word contains w0 as a factor.
func (c *Checker) Exists(w0 string) bool {
	_, _, ok := c.search(w0)

	return ok
}

// Find is Exists that also returns the witness behind a yes.
func (c *Checker) Find(w0 string) (Witness, bool) {
	s0, sn, ok := c.search(w0)
	if !ok {
		return Witness{}, false
	}
	w := Witness{Start: s0, End: sn}
	w.Trace = c.trace(s0, w0)
	w.Prefix, _ = c.r.ShortestPath(c.a.Initial(), func(s automaton.State) bool { return s == s0 })
	w.Suffix, _ = c.r.ShortestPath(sn, c.a.IsFinal)

	return w, true
}

// search returns the first (S0, SN) pair that proves w0 is a factor.
//
// Steps:
//  1. Empty w0: S0 = SN = initial, answer FinalReachableFrom(initial).
//  2. For each transition labeled w0[0], in insertion order, take S0 = From.
//     Determinism makes every S0 distinct for a fixed first symbol.
//  3. Trace w0 from S0 and test each SN; stop at the first success.
func (c *Checker) search(w0 string) (s0, sn automaton.State, ok bool) {
	q0 := c.a.Initial()
	if w0 == "" {
		return q0, q0, c.r.FinalReachableFrom(q0)
	}

	c.a.EachTransition(func(t automaton.Transition) bool {
		if t.Symbol != w0[0] {
			return true
		}
		if sn, ok = c.traceEnds(t.From, w0); ok {
			s0 = t.From
			return false
		}
		return true
	})

	return s0, sn, ok
}

// traceEnds walks every trace of w0 from s0 and returns the first end state
// SN for which both FinalReachableFrom(SN) and ReachableFromInitial(s0) hold.
// In a deterministic automaton at most one transition matches each step, but
// every match is followed.
func (c *Checker) traceEnds(s0 automaton.State, w0 string) (automaton.State, bool) {
	c.stack = append(c.stack[:0], frame{state: s0})
	var f frame
	for len(c.stack) > 0 {
		f = c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		if f.depth == len(w0) {
			if c.r.FinalReachableFrom(f.state) && c.r.ReachableFromInitial(s0) {
				return f.state, true
			}
			continue
		}

		c.a.EachOutgoing(f.state, func(t automaton.Transition) {
			if t.Symbol == w0[f.depth] {
				c.stack = append(c.stack, frame{state: t.To, depth: f.depth + 1})
			}
		})
	}

	return 0, false
}

// trace replays w0 from s0 and returns the visited states, s0 first.
func (c *Checker) trace(s0 automaton.State, w0 string) []automaton.State {
	states := make([]automaton.State, 1, len(w0)+1)
	states[0] = s0
	cur := s0
	for i := 0; i < len(w0); i++ {
		cur, _ = c.a.Step(cur, w0[i])
		states = append(states, cur)
	}

	return states
}
