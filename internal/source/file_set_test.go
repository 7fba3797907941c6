package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.hs", []byte("hello world"), 0)
	id2 := fs.Add("test.hs", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("ids = %d, %d; want 0, 1", id1, id2)
	}

	latest, ok := fs.GetLatest("test.hs")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.hs", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.hs", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := fs.Position(id, tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 3}) {
		t.Errorf("Resolve = %+v..%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.hs", []byte("first\r\nsecond\nthird")))

	for i, want := range []string{"first", "second", "third", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q", got)
	}
}

func TestLoadStripsBOMKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.hs")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x\r\n" {
		t.Errorf("content = %q, want %q", f.Content, "x\r\n")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
	if got := a.At(); got != (Span{File: 1, Start: 8, End: 8}) || !got.Empty() {
		t.Errorf("At = %v", got)
	}
}

func TestStem(t *testing.T) {
	if got := Stem(filepath.Join("dir", "hello.hs")); got != "hello" {
		t.Errorf("Stem = %q", got)
	}
	if got := Stem("noext"); got != "noext" {
		t.Errorf("Stem = %q", got)
	}
}
