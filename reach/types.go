package reach

import (
	"errors"

	"github.com/katalvlaran/dfafactor/automaton"
)

// ErrAutomatonNil is returned when New receives a nil automaton.
var ErrAutomatonNil = errors.New("reach: automaton is nil")

// Option configures an Analyzer.
type Option func(*Options)

// Options holds the Analyzer hooks.
type Options struct {
	// OnVisit is called once for every state a depth-first or breadth-first
	// query expands, in expansion order.
	OnVisit func(s automaton.State)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(automaton.State) {},
	}
}

// WithOnVisit installs fn as the expansion hook. A nil fn keeps the no-op.
func WithOnVisit(fn func(s automaton.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
