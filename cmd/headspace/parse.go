package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"headspace/internal/diagfmt"
	"headspace/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.hs",
		Short: "Parse a headspace source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	cmd.Flags().Bool("single-statement", false, "parse only the first top-level statement")
	cmd.Flags().Bool("keep-trivia", false, "keep top-level whitespace and comments as Spaces nodes")
	cmd.Flags().Bool("check", false, "also report informational diagnostics about ignored constructs")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	single, err := cmd.Flags().GetBool("single-statement")
	if err != nil {
		return fmt.Errorf("failed to get single-statement flag: %w", err)
	}
	keepTrivia, err := cmd.Flags().GetBool("keep-trivia")
	if err != nil {
		return fmt.Errorf("failed to get keep-trivia flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	common, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], driver.ParseOptions{
		MaxDiagnostics:  common.maxDiagnostics,
		SingleStatement: single,
		KeepTrivia:      keepTrivia,
		Check:           check,
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if !common.quiet || result.Err != nil {
		if err := printDiagnostics(cmd, result.Bag, result.FileSet, "pretty", check); err != nil {
			return err
		}
	}
	if result.Err != nil {
		return errReported
	}

	switch format {
	case "tree", "pretty":
		return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Module, result.FileSet)
	case "json":
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Module)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
