package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"headspace/internal/buildpipeline"
	"headspace/internal/diag"
	"headspace/internal/diagfmt"
	"headspace/internal/source"
)

// applyColorFlag sets the global fatih/color switch from --color.
func applyColorFlag(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(f))
}

type commonFlags struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readCommonFlags(cmd *cobra.Command) (commonFlags, error) {
	var out commonFlags
	var err error
	pf := cmd.Root().PersistentFlags()
	if out.quiet, err = pf.GetBool("quiet"); err != nil {
		return out, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if out.timings, err = pf.GetBool("timings"); err != nil {
		return out, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if out.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return out, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return out, nil
}

// printDiagnostics renders bag to stderr. Info diagnostics are shown only
// when verbose is set.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string, verbose bool) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	shown := bag
	if !verbose {
		shown = bag.Filter(diag.SevWarning)
	}
	shown.Sort()
	out := cmd.ErrOrStderr()
	switch format {
	case "json":
		return diagfmt.JSON(out, shown, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "short":
		_, err := io.WriteString(out, diag.FormatShort(shown.Items(), fs, false))
		return err
	case "", "pretty":
		if shown.Len() == 0 {
			return nil
		}
		diagfmt.Pretty(out, shown, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
		return nil
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}

func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if out == nil {
		return
	}
	for _, stage := range []buildpipeline.Stage{buildpipeline.StageParse, buildpipeline.StageEmit, buildpipeline.StageWrite} {
		if timings.Has(stage) {
			fmt.Fprintf(out, "%s %.1f ms\n", stage, toMillis(timings.Duration(stage)))
		}
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
