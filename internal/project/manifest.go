package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultOutDir is used when [build].out is empty.
const DefaultOutDir = "out"

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
	// Entry is the source file built when no file is given on the command line.
	Entry string `toml:"entry,omitempty"`
}

// BuildSection is the [build] table.
type BuildSection struct {
	Targets         []string `toml:"targets"`
	Out             string   `toml:"out"`
	Strict          bool     `toml:"strict"`
	SingleStatement bool     `toml:"single_statement"`
	Cache           *bool    `toml:"cache,omitempty"`
	Jobs            int      `toml:"jobs"`
}

// Manifest is a decoded headspace.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`

	// Path is the file the manifest was read from; empty for defaults.
	Path string `toml:"-"`
}

var (
	// ErrUnknownKey reports keys that do not belong to the manifest schema.
	ErrUnknownKey = errors.New("unknown key")
	// ErrNegativeJobs reports a negative [build].jobs.
	ErrNegativeJobs = errors.New("[build].jobs must be >= 0")
)

// ManifestError ties a manifest problem to its file.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// Root returns the directory holding the manifest, or "" for defaults.
func (m *Manifest) Root() string {
	if m == nil || m.Path == "" {
		return ""
	}
	return filepath.Dir(m.Path)
}

// CacheEnabled reports [build].cache, defaulting to true.
func (m *Manifest) CacheEnabled() bool {
	if m == nil || m.Build.Cache == nil {
		return true
	}
	return *m.Build.Cache
}

// OutDir resolves [build].out against the manifest directory.
func (m *Manifest) OutDir() string {
	out := DefaultOutDir
	if m != nil && strings.TrimSpace(m.Build.Out) != "" {
		out = m.Build.Out
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Root(), out)
}

// EntryPath resolves [package].entry against the manifest directory.
// It returns "" when no entry is set.
func (m *Manifest) EntryPath() string {
	if m == nil || strings.TrimSpace(m.Package.Entry) == "" {
		return ""
	}
	if filepath.IsAbs(m.Package.Entry) {
		return m.Package.Entry
	}
	return filepath.Join(m.Root(), m.Package.Entry)
}

// Validate checks the decoded values.
func (m *Manifest) Validate() error {
	if m.Build.Jobs < 0 {
		return &ManifestError{Path: m.Path, Err: ErrNegativeJobs}
	}
	return nil
}

// Decode reads a manifest from r. path is used in errors only.
func Decode(r io.Reader, path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: fmt.Errorf("failed to parse TOML: %w", err)}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return nil, &ManifestError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))}
	}
	m.Path = path
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	defer f.Close()
	return Decode(f, path)
}

// Discover finds and loads the nearest manifest above startDir.
// It returns (nil, nil) when there is none.
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return Load(path)
}

// Encode writes m as TOML.
func Encode(w io.Writer, m *Manifest) error {
	return toml.NewEncoder(w).Encode(m)
}

// DefaultEntry is the entry file created by Init.
const DefaultEntry = "main.hs"

// Init writes a starter manifest into dir. It refuses to overwrite an
// existing one.
func Init(dir, name string, targets []string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", &ManifestError{Path: path, Err: os.ErrExist}
	}
	if name == "" {
		name = filepath.Base(dir)
	}
	m := &Manifest{
		Package: PackageSection{Name: name, Entry: DefaultEntry},
		Build:   BuildSection{Targets: targets, Out: DefaultOutDir},
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", &ManifestError{Path: path, Err: err}
	}
	if err := Encode(f, m); err != nil {
		_ = f.Close()
		return "", &ManifestError{Path: path, Err: err}
	}
	return path, f.Close()
}
