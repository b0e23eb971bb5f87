// Package cli wires the dfafactor command: argument parsing, logging setup,
// loading, the factor query and the report.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/katalvlaran/dfafactor/factor"
	"github.com/katalvlaran/dfafactor/internal/buildinfo"
	"github.com/katalvlaran/dfafactor/internal/logger"
	"github.com/katalvlaran/dfafactor/internal/report"
	"github.com/katalvlaran/dfafactor/loader"
)

// EmptyWord is the command-line spelling of the empty factor.
const EmptyWord = "-"

const longHelp = `Decide whether some word accepted by a deterministic finite automaton
contains <word> as a contiguous factor, i.e. whether w1+<word>+w2 is accepted
for some w1, w2.

Parameters:
  path    path to the state machine file
  word    the factor to look for; "-" is the empty word

Structure of the state machine file:
  ||A||          cardinality of the alphabet (at most 26: a..z)
  ||S||          number of states
  s0             initial state
  ||F|| {Fs}     number of final states, then the final states
  { s a s' }     transition from state s to s' by character a`

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flag values of one invocation.
type options struct {
	verbose bool
	witness bool
	format  string
	debug   bool
	logFile string
}

// NewRootCmd builds the dfafactor command.
func NewRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:          "dfafactor <path> <word>",
		Short:        "Check whether a DFA accepts some word containing a given factor",
		Long:         longHelp,
		Version:      buildinfo.String(),
		Args:         exactArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	cmd.Flags().BoolVar(&o.verbose, "verbose", false, "print the automaton and the query before the answer")
	cmd.Flags().BoolVar(&o.witness, "witness", false, "print an accepted word containing the factor when the answer is yes")
	cmd.Flags().StringVar(&o.format, "format", string(report.FormatText), "dump layout for --verbose: text or yaml")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "emit JSON debug logs (stderr unless --log-file is set)")
	cmd.Flags().StringVar(&o.logFile, "log-file", "", "append JSON logs to this file")

	return cmd
}

func exactArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <path> <word>, got %d argument(s); use -h to get help", len(args))
	}

	return nil
}

func run(cmd *cobra.Command, args []string, o options) (err error) {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}

	if o.debug || o.logFile != "" {
		cleanup, lerr := logger.Setup(logger.Config{
			Path:   o.logFile,
			Writer: cmd.ErrOrStderr(),
			Debug:  o.debug,
		})
		if lerr != nil {
			return fmt.Errorf("logger: %w", lerr)
		}
		defer func() { err = multierr.Append(err, cleanup()) }()
	}
	log := logger.L()

	path, w0 := args[0], args[1]
	if w0 == EmptyWord {
		w0 = ""
	}
	out := cmd.OutOrStdout()

	a, err := loader.LoadFile(path,
		loader.WithLogger(log),
		loader.WithOnWarning(func(w loader.Warning) { _ = report.Warning(out, w) }),
	)
	if err != nil {
		log.Error("load.failed", "path", path, "error", err)
		return err
	}

	if o.verbose {
		if err = report.Dump(out, a, format); err != nil {
			return err
		}
		if err = report.Announcement(out, w0); err != nil {
			return err
		}
	}

	c, err := factor.New(a)
	if err != nil {
		return err
	}
	var yes bool
	if o.witness {
		var wit factor.Witness
		if wit, yes = c.Find(w0); yes {
			if err = report.Witness(out, wit, w0); err != nil {
				return err
			}
		}
	} else {
		yes = c.Exists(w0)
	}
	log.Info("query.answered", "path", path, "w0", w0, "answer", yes)

	return report.Answer(out, yes)
}
