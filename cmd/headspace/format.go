package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"headspace/internal/driver"
	"headspace/internal/format"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format headspace source files",
		Long:  "Rewrite *.hs files in canonical layout. Directories are searched recursively.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	cmd.Flags().Bool("check", false, "list files that need formatting and fail if any do")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().Int("indent", 2, "spaces per indentation level")
	cmd.Flags().Bool("tabs", false, "indent with tabs")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := flags.GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := flags.GetBool("stdout")
	if err != nil {
		return err
	}
	indent, err := flags.GetInt("indent")
	if err != nil {
		return err
	}
	tabs, err := flags.GetBool("tabs")
	if err != nil {
		return err
	}
	common, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return errors.New("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return errors.New("fmt: --stdout is only supported with text output")
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:  check,
		Stdout: writeToStdout,
		Format: format.Options{IndentWidth: indent, UseTabs: tabs},
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch outputFormat {
	case "text":
		for _, res := range results {
			switch {
			case res.Err != nil:
				hasErrors = true
				fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
			case writeToStdout:
				_, _ = out.Write(res.Formatted)
			case check && res.Changed:
				hasChanges = true
				if !common.quiet {
					fmt.Fprintln(out, res.Path)
				}
			case res.Changed && !common.quiet:
				fmt.Fprintf(out, "reformatted %s\n", res.Path)
			}
		}
	case "json":
		type jsonResult struct {
			Path     string `json:"path"`
			Changed  bool   `json:"changed"`
			Error    string `json:"error,omitempty"`
			CheckRun bool   `json:"check"`
		}
		payload := make([]jsonResult, 0, len(results))
		for _, res := range results {
			jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
			if res.Err != nil {
				hasErrors = true
				jr.Error = res.Err.Error()
			}
			hasChanges = hasChanges || (check && res.Changed)
			payload = append(payload, jr)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return errors.New("fmt: failed to format some files")
	}
	if check && hasChanges {
		return errors.New("fmt: formatting changes required")
	}
	return nil
}
