package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"headspace/internal/backend"
)

// WriteArtifacts writes each artifact under dir, creating parent
// directories. It returns the written paths in artifact order. Names that
// are absolute or climb out of dir are rejected before anything is written.
func WriteArtifacts(dir string, arts []backend.Artifact) ([]string, error) {
	paths := make([]string, len(arts))
	for i, a := range arts {
		p, err := artifactPath(dir, a.Name)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	for i, a := range arts {
		p := paths[i]
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return paths[:i], fmt.Errorf("create directory for %s: %w", a.Name, err)
		}
		if err := os.WriteFile(p, []byte(a.Content), 0o644); err != nil {
			return paths[:i], fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return paths, nil
}

func artifactPath(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("artifact with empty name")
	}
	rel := filepath.FromSlash(name)
	if filepath.IsAbs(rel) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("artifact name %q is absolute", name)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("artifact name %q escapes the output directory", name)
	}
	return filepath.Join(dir, clean), nil
}
