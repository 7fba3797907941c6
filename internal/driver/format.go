package driver

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"headspace/internal/format"
)

// SourceExt is the extension of headspace source files.
const SourceExt = ".hs"

// FormatOptions configures FormatPaths.
type FormatOptions struct {
	// Check reports changes without writing.
	Check bool
	// Stdout keeps files untouched; callers print Formatted.
	Stdout bool
	Format format.Options
	Jobs   int
}

// FormatResult is the outcome for one file.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Err       error
}

// FormatPaths formats every file named in paths; directories are walked for
// *.hs files. Results come back sorted by path. Per-file failures are stored
// in FormatResult.Err; the returned error covers walking and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := expandSources(paths)
	if err != nil {
		return nil, err
	}

	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	// #nosec G304 -- path comes from the command line or a directory walk
	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	rt, err := format.CheckRoundTrip(path, bytes.TrimPrefix(content, utf8BOM), opts.Format)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = rt.Formatted
	res.Changed = !bytes.Equal(rt.Formatted, content)
	if !res.Changed || opts.Check || opts.Stdout {
		return res
	}
	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	if err := os.WriteFile(path, rt.Formatted, info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("write %s: %w", path, err)
	}
	return res
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// expandSources resolves files and directories into a sorted, deduplicated
// list of source files.
func expandSources(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if path != p && len(d.Name()) > 1 && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == SourceExt {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}
