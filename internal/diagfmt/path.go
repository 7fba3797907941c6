package diagfmt

import (
	"path/filepath"

	"headspace/internal/source"
)

func formatPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, abs); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	case PathModeBasename:
		return source.BaseName(f.Path)
	}
	return f.Path
}
