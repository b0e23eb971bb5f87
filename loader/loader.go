package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/katalvlaran/dfafactor/automaton"
)

// maxStates is the largest state count whose ids fit automaton.State.
const maxStates = math.MaxUint32

// parser holds the state of one Load call.
type parser struct {
	tok      *tokenizer
	opts     Options
	b        *automaton.Builder
	states   uint64
	last     *automaton.Transition // last accepted rule, for diagnostics
	warnings int
}

// Load reads one automaton description from r.
//
// Steps:
//  1. alphabetSize, stateCount, initial.
//  2. finalsCount followed by that many final states.
//  3. transition rules until end of input, or until a rule does not start
//     with a number.
//
// Numbers too large for 64 bits saturate, so they fail the range checks
// rather than the syntax check.
// On any fatal error the partially built automaton is dropped and an *Error
// is returned; duplicates are reported through the OnWarning hook.
func Load(r io.Reader, opts ...Option) (*automaton.Automaton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{tok: newTokenizer(r), opts: o}

	a, err := p.parse()
	if err != nil {
		o.Logger.Debug("loader.failed", "error", err)
		return nil, err
	}
	o.Logger.Debug("loader.loaded",
		"alphabet", a.AlphabetSize(),
		"states", a.StateCount(),
		"finals", len(a.Finals()),
		"transitions", a.TransitionCount(),
		"duplicates", p.warnings,
	)

	return a, nil
}

// LoadFile opens path, loads it and closes it. A close failure is reported
// together with any load error.
func LoadFile(path string, opts ...Option) (*automaton.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}

	a, err := Load(f, opts...)
	err = multierr.Append(err, f.Close())
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (p *parser) parse() (*automaton.Automaton, error) {
	// 1) header
	alphabet, err := p.number("cardinality of alphabet (int) expected")
	if err != nil {
		return nil, err
	}
	if alphabet > automaton.MaxAlphabetSize {
		return nil, p.fail(ErrAlphabetTooLarge, nil, "cardinality %d > %d", alphabet, automaton.MaxAlphabetSize)
	}
	states, err := p.number("cardinality of states set (int) expected")
	if err != nil {
		return nil, err
	}
	if states > maxStates {
		return nil, p.fail(ErrOutOfRange, nil, "cardinality of states set %d > %d", states, uint64(maxStates))
	}
	p.states = states
	initial, err := p.number("initial state (int) expected")
	if err != nil {
		return nil, err
	}
	if initial >= states {
		return nil, p.fail(ErrOutOfRange, nil, "initial state %d >= %d", initial, states)
	}
	if p.b, err = automaton.NewBuilder(int(alphabet), int(states), automaton.State(initial)); err != nil {
		return nil, p.fail(kindOf(err), err, "%v", err)
	}

	// 2) finals
	count, err := p.number("number of final states (int) expected")
	if err != nil {
		return nil, err
	}
	var f uint64
	for i := uint64(1); i <= count; i++ {
		if f, err = p.number(fmt.Sprintf("cannot read final state #%d", i)); err != nil {
			return nil, err
		}
		if f >= states {
			return nil, p.fail(ErrOutOfRange, automaton.ErrStateOutOfRange, "final state %d >= %d", f, states)
		}
		if err = p.b.AddFinal(automaton.State(f)); err != nil {
			return nil, p.fail(kindOf(err), err, "final state %d >= %d", f, states)
		}
	}

	// 3) transitions
	for {
		more, err := p.transition()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return p.b.Build(), nil
}

// transition reads and inserts one rule. more is false at a clean end of
// input and when the next token cannot start a rule; once a rule has started,
// a missing or bad token is ErrMalformedInput.
func (p *parser) transition() (bool, error) {
	from, err := p.tok.next()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, p.fail(ErrRead, err, "%v", err)
	}
	s0, ok := parseNumber(from)
	if !ok {
		p.opts.Logger.Debug("loader.transitions_ended",
			"token", from,
			"line", p.tok.line,
			"offset", p.tok.offset,
		)
		return false, nil
	}
	symbol, err := p.tok.next()
	if err != nil {
		return false, p.readFail(err, p.ruleExpected())
	}
	to, err := p.tok.next()
	if err != nil {
		return false, p.readFail(err, p.ruleExpected())
	}

	s1, ok := parseNumber(to)
	if !ok || len(symbol) != 1 {
		return false, p.fail(ErrMalformedInput, nil, "%s, got %q", p.ruleExpected(), from+" "+symbol+" "+to)
	}
	if s0 >= p.states || s1 >= p.states {
		return false, p.fail(ErrOutOfRange, automaton.ErrStateOutOfRange,
			"transition rule %s %s %s references invalid state, ensure both are < %d", from, symbol, to, p.states)
	}

	t := automaton.Transition{From: automaton.State(s0), Symbol: symbol[0], To: automaton.State(s1)}
	err = p.b.AddTransition(t)
	switch {
	case err == nil:
		p.last = &t
	case errors.Is(err, automaton.ErrDuplicateTransition):
		p.warn(t)
	case errors.Is(err, automaton.ErrSymbolOutOfAlphabet):
		return false, p.fail(ErrOutOfAlphabet, err,
			"transition rule %s references out-of-alphabet character", t)
	case errors.Is(err, automaton.ErrNonDeterministic):
		var ce *automaton.ConflictError
		errors.As(err, &ce)
		return false, p.fail(ErrNonDeterministic, err,
			"transition rule %s makes state machine non-deterministic, it collides with rule %s", t, ce.Existing)
	default:
		return false, p.fail(kindOf(err), err, "%v", err)
	}

	return true, nil
}

// number reads one unsigned number; msg describes what was expected.
func (p *parser) number(msg string) (uint64, error) {
	tok, err := p.tok.next()
	if err != nil {
		return 0, p.readFail(err, msg)
	}
	n, ok := parseNumber(tok)
	if !ok {
		return 0, p.fail(ErrMalformedInput, nil, "%s, got %q", msg, tok)
	}

	return n, nil
}

// parseNumber accepts decimal digits only. Values past 64 bits saturate to
// math.MaxUint64.
func parseNumber(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return n, true
}

// ruleExpected builds the malformed-rule message with the last good rule.
func (p *parser) ruleExpected() string {
	const base = `expected transition rule "s0 a s1" (int char int)`
	if p.last == nil {
		return base + " (this is the first transition)"
	}

	return fmt.Sprintf("%s (last processed transition: %s)", base, p.last)
}

func (p *parser) warn(t automaton.Transition) {
	p.warnings++
	w := Warning{
		Kind:       ErrDuplicateTransition,
		Transition: t,
		Offset:     p.tok.offset,
		Line:       p.tok.line,
		Msg:        fmt.Sprintf("transition rule %s is a duplicate", t),
	}
	p.opts.Logger.Warn("loader.duplicate_transition",
		"rule", t.String(),
		"line", w.Line,
		"offset", w.Offset,
	)
	p.opts.OnWarning(w)
}

// readFail turns a tokenizer error into MalformedInput (EOF) or Read.
func (p *parser) readFail(err error, msg string) error {
	if errors.Is(err, io.EOF) {
		return p.fail(ErrMalformedInput, nil, "%s, got end of input", msg)
	}

	return p.fail(ErrRead, err, "%v", err)
}

func (p *parser) fail(kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Offset: p.tok.offset,
		Line:   p.tok.line,
		Msg:    fmt.Sprintf(format, args...),
		Err:    cause,
	}
}
