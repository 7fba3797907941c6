package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"headspace/internal/backend"
	"headspace/internal/buildpipeline"
	"headspace/internal/diagfmt"
	"headspace/internal/driver"
	"headspace/internal/observ"
	"headspace/internal/project"
)

// defaultTargets are built when neither flags nor the manifest name any.
var defaultTargets = []string{"c", "python", "go"}

const cacheApp = "headspace"

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [file.hs]",
		Short: "Translate a headspace module into one or more target languages",
		Long: `Build compiles file.hs (or the [package].entry of the nearest headspace.toml)
for every requested target and writes the generated sources to the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	f := cmd.Flags()
	f.StringSliceP("target", "t", nil, "target languages (c, python, go, javascript, java, dotnet)")
	f.StringP("out", "o", "", "output directory (default: [build].out or ./out)")
	f.String("name", "", "module name used when the source has no moduleName")
	f.Bool("strict", false, "fail on statements a target would drop")
	f.Bool("single-statement", false, "parse only the first top-level statement")
	f.Int("jobs", 0, "max parallel emitters (0=auto)")
	f.Bool("no-cache", false, "bypass the artifact cache")
	f.String("cache-dir", "", "artifact cache directory (default: $XDG_CACHE_HOME/headspace)")
	f.Bool("stdout", false, "print the artifacts instead of writing them")
	f.String("ui", "auto", "progress view (auto|on|off)")
	f.String("diagnostics-format", "pretty", "diagnostics format (pretty|short|json)")
	return cmd
}

type buildFlags struct {
	targets     []string
	out         string
	name        string
	strict      bool
	single      bool
	jobs        int
	noCache     bool
	cacheDir    string
	stdout      bool
	ui          string
	diagnostics string
}

func readBuildFlags(cmd *cobra.Command) (buildFlags, error) {
	var bf buildFlags
	var err error
	f := cmd.Flags()
	if bf.targets, err = f.GetStringSlice("target"); err != nil {
		return bf, err
	}
	if bf.out, err = f.GetString("out"); err != nil {
		return bf, err
	}
	if bf.name, err = f.GetString("name"); err != nil {
		return bf, err
	}
	if bf.strict, err = f.GetBool("strict"); err != nil {
		return bf, err
	}
	if bf.single, err = f.GetBool("single-statement"); err != nil {
		return bf, err
	}
	if bf.jobs, err = f.GetInt("jobs"); err != nil {
		return bf, err
	}
	if bf.noCache, err = f.GetBool("no-cache"); err != nil {
		return bf, err
	}
	if bf.cacheDir, err = f.GetString("cache-dir"); err != nil {
		return bf, err
	}
	if bf.stdout, err = f.GetBool("stdout"); err != nil {
		return bf, err
	}
	if bf.ui, err = f.GetString("ui"); err != nil {
		return bf, err
	}
	if bf.diagnostics, err = f.GetString("diagnostics-format"); err != nil {
		return bf, err
	}
	return bf, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	bf, err := readBuildFlags(cmd)
	if err != nil {
		return err
	}
	common, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}
	mode, err := readUIMode(bf.ui)
	if err != nil {
		return err
	}

	searchDir := "."
	if len(args) > 0 {
		searchDir = filepath.Dir(args[0])
	}
	manifest, err := project.Discover(searchDir)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	} else {
		input = manifest.EntryPath()
	}
	if input == "" {
		return errors.New("no input file: pass file.hs or set [package].entry in headspace.toml")
	}

	targets := bf.targets
	if !cmd.Flags().Changed("target") {
		if manifest != nil && len(manifest.Build.Targets) > 0 {
			targets = manifest.Build.Targets
		} else {
			targets = defaultTargets
		}
	}
	// an unknown target is fatal before anything is read
	resolved, err := driver.ResolveTargets(targets)
	if err != nil {
		return err
	}

	cfg := backend.Config{FallbackName: bf.name, Strict: bf.strict}
	single := bf.single
	jobs := bf.jobs
	outDir := bf.out
	if manifest != nil {
		if cfg.FallbackName == "" {
			cfg.FallbackName = manifest.Package.Name
		}
		if !cmd.Flags().Changed("strict") {
			cfg.Strict = manifest.Build.Strict
		}
		if !cmd.Flags().Changed("single-statement") {
			single = manifest.Build.SingleStatement
		}
		if !cmd.Flags().Changed("jobs") {
			jobs = manifest.Build.Jobs
		}
		if outDir == "" {
			outDir = manifest.OutDir()
		}
	}
	if outDir == "" {
		outDir = project.DefaultOutDir
	}
	if bf.stdout {
		outDir = ""
	}

	var cache *driver.DiskCache
	if !bf.noCache && manifest.CacheEnabled() {
		cache, err = openCache(bf.cacheDir)
		if err != nil && !common.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: artifact cache disabled: %v\n", err)
		}
	}

	var timer *observ.Timer
	if common.timings {
		timer = observ.NewTimer()
	}

	req := &buildpipeline.BuildRequest{
		Compile: driver.CompileRequest{
			Path:             input,
			Targets:          targets,
			Config:           cfg,
			SingleStatement:  single,
			Jobs:             jobs,
			MaxDiagnostics:   common.maxDiagnostics,
			Cache:            cache,
			Timer:            timer,
			TimingDiagnostic: common.timings && bf.diagnostics == "json",
		},
		OutDir: outDir,
	}

	var res buildpipeline.BuildResult
	if shouldUseTUI(mode, common.quiet) && !bf.stdout {
		names := make([]string, len(resolved))
		for i, t := range resolved {
			names[i] = string(t)
		}
		res, err = runBuildWithUI(cmd.Context(), "headspace build "+filepath.Base(input), names, req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}

	compiled := res.Compile
	if compiled != nil {
		verbose := common.timings && bf.diagnostics == "json"
		if perr := printDiagnostics(cmd, compiled.Bag, compiled.FileSet, bf.diagnostics, verbose); perr != nil {
			return perr
		}
	}
	if err != nil {
		dumpTraceRing(cmd)
		var ute *backend.UnknownTargetError
		if errors.As(err, &ute) || compiled == nil || compiled.Bag == nil || !compiled.Bag.HasErrors() {
			return err
		}
		return errReported
	}

	if bf.stdout {
		if err := diagfmt.FormatArtifacts(cmd.OutOrStdout(), res.Compile.Artifacts(), useColor(cmd, os.Stdout)); err != nil {
			return err
		}
	} else if !common.quiet {
		cwd, _ := os.Getwd()
		for _, p := range res.Written {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", formatPathForOutput(cwd, absPath(p)))
		}
	}

	if common.timings {
		errOut := cmd.ErrOrStderr()
		printStageTimings(errOut, res.Timings)
		fmt.Fprint(errOut, timer.Summary())
	}
	return nil
}

func openCache(dir string) (*driver.DiskCache, error) {
	if dir != "" {
		return driver.NewDiskCache(dir)
	}
	return driver.OpenDiskCache(cacheApp)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
