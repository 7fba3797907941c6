package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"headspace/internal/project"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Remove generated sources and the artifact cache",
		Long: `Remove the output directory of the nearest headspace.toml ([build].out)
and drop the artifact cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClean,
	}
	cmd.Flags().Bool("cache-only", false, "only drop the artifact cache")
	cmd.Flags().String("cache-dir", "", "artifact cache directory (default: $XDG_CACHE_HOME/headspace)")
	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	cacheOnly, err := cmd.Flags().GetBool("cache-only")
	if err != nil {
		return err
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !cacheOnly {
		baseDir := "."
		if len(args) > 0 && args[0] != "" {
			baseDir = args[0]
		}
		if err := removeOutDir(cmd, baseDir); err != nil {
			return err
		}
	}

	cache, err := openCache(cacheDir)
	if err != nil {
		return fmt.Errorf("failed to open artifact cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop artifact cache: %w", err)
	}
	fmt.Fprintf(out, "dropped cache %s\n", cache.Dir())
	return nil
}

func removeOutDir(cmd *cobra.Command, base string) error {
	info, err := os.Stat(base)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", base, err)
	}
	if !info.IsDir() {
		base = filepath.Dir(base)
	}
	manifest, err := project.Discover(base)
	if err != nil {
		return err
	}
	if manifest == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "no %s found, output directory left alone\n", project.ManifestName)
		return nil
	}

	outDir := manifest.OutDir()
	st, err := os.Stat(outDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "output directory not found")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", outDir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", outDir)
	}
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", outDir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", formatPathForOutput(manifest.Root(), outDir))
	return nil
}
