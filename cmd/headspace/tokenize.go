package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"headspace/internal/diagfmt"
	"headspace/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.hs",
		Short: "Tokenize a headspace source file",
		Long:  `Tokenize breaks a headspace source file into tokens, whitespace and comments included`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	common, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], common.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if !common.quiet {
		if err := printDiagnostics(cmd, result.Bag, result.FileSet, "pretty", false); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
