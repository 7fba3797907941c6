package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"headspace/internal/project"
)

const defaultMain = `moduleName = "%s"

main: function[][
  os.print["Hello World\n"]
]
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path|name]",
		Short: "Initialize a new headspace project",
		Long: `Initialize a new headspace project by creating headspace.toml and a
hello-world entry point (main.hs). Without an argument the current directory is
used; a non-existing name creates the directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	cmd.Flags().StringSliceP("target", "t", defaultTargets, "targets recorded in [build].targets")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	targets, err := cmd.Flags().GetStringSlice("target")
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) > 0 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "headspace-project"
	}

	if _, err := project.Init(target, name, targets); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("project already initialized: %s exists", filepath.Join(target, project.ManifestName))
		}
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, project.DefaultEntry)
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(fmt.Sprintf(defaultMain, moduleIdent(name))), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", project.DefaultEntry, err)
		}
		createdMain = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized headspace project in %s\n", formatPathForOutput(wd, target))
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(out, "  - %s\n", project.DefaultEntry)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", project.DefaultEntry)
	}
	return nil
}

// moduleIdent keeps the project name usable inside a string literal.
func moduleIdent(name string) string {
	return strings.NewReplacer(`"`, "", `\`, "", "'", "").Replace(name)
}
