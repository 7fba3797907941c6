// Package main implements the headspace CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"headspace/internal/prof"
	"headspace/internal/version"
)

// errReported means the failure was already rendered as diagnostics.
var errReported = errors.New("compilation failed")

// runState collects what PersistentPreRunE opened so it can be closed even
// when the command fails and cobra skips the post-run hooks.
type runState struct {
	cleanups []func()
}

func (s *runState) add(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

func (s *runState) finish() {
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil
}

func newRootCmd() *cobra.Command {
	root, _ := newCLI()
	return root
}

// newCLI builds the command tree. The returned func releases trace outputs
// and profiles; it is safe to call more than once.
func newCLI() (*cobra.Command, func()) {
	state := &runState{}

	root := &cobra.Command{
		Use:           "headspace",
		Short:         "headspace source-to-source compiler",
		Long:          `headspace translates a headspace module into C, Python, Go, JavaScript, Java or C# source.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyColorFlag(cmd); err != nil {
				return err
			}
			session, err := startProfiling(cmd)
			if err != nil {
				return err
			}
			state.add(func() {
				if err := session.Stop(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
			})
			cleanup, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			state.add(cleanup)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			state.finish()
		},
	}

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newTargetsCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCleanCmd())
	root.AddCommand(newVersionCmd())

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")
	flags.String("trace", "", "trace output file (- for stderr, .ndjson for JSON lines)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept in ring mode")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")

	return root, state.finish
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	var (
		opts prof.Options
		err  error
	)
	flags := cmd.Root().PersistentFlags()
	if opts.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return nil, err
	}
	if opts.Mem, err = flags.GetString("memprofile"); err != nil {
		return nil, err
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if !opts.Enabled() {
		return nil, nil
	}
	return prof.Start(opts)
}

// main runs the root command. Any error exits with status 1; errors that
// were already shown as diagnostics are not printed again.
func main() {
	root, finish := newCLI()
	err := root.Execute()
	finish()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
