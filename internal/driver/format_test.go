package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFormatPaths(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "a.hs")
	clean := filepath.Join(dir, "sub", "b.hs")
	broken := filepath.Join(dir, "sub", "c.hs")
	writeFile(t, messy, "x:int32")
	writeFile(t, clean, "x: int32\n")
	writeFile(t, broken, "main: function[x][]")
	writeFile(t, filepath.Join(dir, ".hidden", "d.hs"), "y:int")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x:int32")

	results, err := FormatPaths(context.Background(), []string{dir, messy}, FormatOptions{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d: %+v", len(results), results)
	}
	byPath := map[string]FormatResult{}
	for _, r := range results {
		byPath[r.Path] = r
	}
	if r := byPath[messy]; r.Err != nil || !r.Changed {
		t.Errorf("a.hs: %+v", r)
	}
	if r := byPath[clean]; r.Err != nil || r.Changed {
		t.Errorf("b.hs: %+v", r)
	}
	if r := byPath[broken]; r.Err == nil {
		t.Errorf("c.hs should fail")
	}

	// check mode leaves files alone
	if got, _ := os.ReadFile(messy); string(got) != "x:int32" {
		t.Fatalf("check rewrote the file: %q", got)
	}

	if _, err := FormatPaths(context.Background(), []string{messy}, FormatOptions{}); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(messy); string(got) != "x: int32\n" {
		t.Fatalf("file not rewritten: %q", got)
	}
}

func TestFormatPathsMissing(t *testing.T) {
	if _, err := FormatPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope.hs")}, FormatOptions{}); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}
