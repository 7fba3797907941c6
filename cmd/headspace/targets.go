package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"headspace/internal/backend"
)

type targetPayload struct {
	Target     string   `json:"target"`
	Aliases    []string `json:"aliases,omitempty"`
	ForeignTag string   `json:"foreign_tag"`
	Files      string   `json:"files"`
}

func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the supported target languages",
		Args:  cobra.NoArgs,
		RunE:  runTargets,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTargets(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var rows []targetPayload
	for _, t := range backend.Targets() {
		info := backend.Info(t)
		rows = append(rows, targetPayload{
			Target:     string(t),
			Aliases:    info.Aliases,
			ForeignTag: info.ForeignTag,
			Files:      info.Files,
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "pretty":
		width := 0
		for _, r := range rows {
			width = max(width, runewidth.StringWidth(r.Target))
		}
		name := color.New(color.Bold)
		dim := color.New(color.Faint)
		for _, r := range rows {
			line := name.Sprint(runewidth.FillRight(r.Target, width)) + "  " + r.Files
			if len(r.Aliases) > 0 {
				line += dim.Sprint("  (aliases: " + strings.Join(r.Aliases, ", ") + ")")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func targetIDs() []string {
	ts := backend.Targets()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
