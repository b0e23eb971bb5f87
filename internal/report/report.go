// Package report renders the human-facing output of the dfafactor command:
// the automaton dump, load warnings, the query announcement and the answer.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dfafactor/automaton"
	"github.com/katalvlaran/dfafactor/factor"
	"github.com/katalvlaran/dfafactor/loader"
)

// Format selects the dump layout.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for anything but text or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w %q (want %q or %q)", ErrUnknownFormat, s, FormatText, FormatYAML)
}

// Dump writes a description of a in the given format.
func Dump(w io.Writer, a *automaton.Automaton, f Format) error {
	if f == FormatYAML {
		return YAML(w, a)
	}

	return Text(w, a)
}

// Text writes the column-aligned dump.
func Text(w io.Writer, a *automaton.Automaton) error {
	var sb strings.Builder
	finals := a.Finals()
	sb.WriteString("State Machine\n")
	fmt.Fprintf(&sb, "Alphabet card.:        %d\n", a.AlphabetSize())
	fmt.Fprintf(&sb, "States number:         %d\n", a.StateCount())
	fmt.Fprintf(&sb, "Initial state:         %d\n", a.Initial())
	fmt.Fprintf(&sb, "Final states number:   %d\n", len(finals))
	sb.WriteString("Final states:          ")
	for _, s := range finals {
		fmt.Fprintf(&sb, "%d ", s)
	}
	fmt.Fprintf(&sb, "\nTransitions number:    %d\n", a.TransitionCount())
	sb.WriteString("Transitions:\n")
	for _, t := range a.Transitions() {
		fmt.Fprintf(&sb, "\t%s\n", t)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// document is the YAML shape of an automaton.
type document struct {
	Alphabet    string   `yaml:"alphabet"`
	States      int      `yaml:"states"`
	Initial     uint32   `yaml:"initial"`
	Finals      []uint32 `yaml:"finals,flow"`
	Transitions []string `yaml:"transitions"`
}

// YAML writes the automaton as a YAML document.
func YAML(w io.Writer, a *automaton.Automaton) error {
	doc := document{
		Alphabet:    a.Alphabet(),
		States:      a.StateCount(),
		Initial:     uint32(a.Initial()),
		Finals:      make([]uint32, 0, len(a.Finals())),
		Transitions: make([]string, 0, a.TransitionCount()),
	}
	for _, s := range a.Finals() {
		doc.Finals = append(doc.Finals, uint32(s))
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, t.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// Warning writes one load warning.
func Warning(w io.Writer, warn loader.Warning) error {
	_, err := fmt.Fprintf(w, "Warning: Transition rule %s is a duplicate (pos. %d)\n", warn.Transition, warn.Offset)
	return err
}

// Announcement writes the line that introduces the query.
func Announcement(w io.Writer, w0 string) error {
	_, err := fmt.Fprintf(w, "\nChecking if there exists w = w1+w0+w2, where w0 = %q, such that w is acceptable...\n", w0)
	return err
}

// Witness writes the accepted word found for w0 and how it splits.
func Witness(w io.Writer, wit factor.Witness, w0 string) error {
	word := wit.Word(w0)
	w1 := word[:len(wit.Prefix)]
	w2 := word[len(wit.Prefix)+len(w0):]
	_, err := fmt.Fprintf(w, "Witness: %q = %q + %q + %q (states %v)\n", word, w1, w0, w2, wit.Trace)
	return err
}

// Answer writes the final line.
func Answer(w io.Writer, yes bool) error {
	ans := "no"
	if yes {
		ans = "yes"
	}
	_, err := fmt.Fprintf(w, "Answer: %s.\n", ans)
	return err
}
