package backend

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

// These tests compile or interpret the generated code with the real
// toolchain and skip when it is not installed.

func writeArtifacts(t *testing.T, dir string, arts []Artifact) {
	t.Helper()
	for _, a := range arts {
		path := filepath.Join(dir, filepath.FromSlash(a.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(a.Content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func requireTool(t *testing.T, name string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("toolchain tests are skipped in -short mode")
	}
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not installed", name)
	}
	return path
}

func runOutput(t *testing.T, dir string, name string, args ...string) []byte {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("%s %v: %v\n%s", name, args, err, stderr.String())
	}
	return stdout.Bytes()
}

// toolchainCase pairs a source with the exact bytes its program prints.
type toolchainCase struct {
	name string
	src  string
	want string
}

var toolchainCases = []toolchainCase{
	{"hello", helloWorld, "Hello World\n"},
	{"foreign", foreignExample, "hello\n"},
	{"escaped", `moduleName = "quote"
main: function[][
  os.print["it\'s\n"]
]`, "it's\n"},
}

func TestToolchainC(t *testing.T) {
	cc := requireTool(t, "cc")
	for _, tc := range toolchainCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			arts := emit(t, "c", tc.src, Config{})
			writeArtifacts(t, dir, arts)
			runOutput(t, dir, cc, "-Wall", "-Wextra", "-std=c89", "-pedantic", "-o", "prog", arts[0].Name)
			if out := runOutput(t, dir, filepath.Join(dir, "prog")); string(out) != tc.want {
				t.Fatalf("output %q, want %q", out, tc.want)
			}
		})
	}
}

func TestToolchainPython(t *testing.T) {
	py := requireTool(t, "python3")
	for _, tc := range toolchainCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			arts := emit(t, "python", tc.src, Config{})
			writeArtifacts(t, dir, arts)
			if out := runOutput(t, dir, py, arts[0].Name); string(out) != tc.want {
				t.Fatalf("output %q, want %q", out, tc.want)
			}
		})
	}
}

func TestToolchainGo(t *testing.T) {
	goBin := requireTool(t, "go")
	cases := append(slices.Clone(toolchainCases), toolchainCase{"foreign-fmt", `moduleName = "gof"
main: function[][
BEGIN_FOREIGN_CODE_GO
	fmt.Println("hi")
END_FOREIGN_CODE_GO
]`, "hi\n"})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			arts := emit(t, "go", tc.src, Config{})
			writeArtifacts(t, dir, arts)
			if out := runOutput(t, dir, goBin, "run", arts[0].Name); string(out) != tc.want {
				t.Fatalf("output %q, want %q", out, tc.want)
			}
		})
	}
}

func TestToolchainNode(t *testing.T) {
	node := requireTool(t, "node")
	for _, tc := range toolchainCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			arts := emit(t, "js", tc.src, Config{})
			writeArtifacts(t, dir, arts)
			if out := runOutput(t, dir, node, arts[0].Name); string(out) != tc.want {
				t.Fatalf("output %q, want %q", out, tc.want)
			}
		})
	}
}
