package backend

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"headspace/internal/ast"
	"headspace/internal/lexer"
	"headspace/internal/parser"
	"headspace/internal/source"
)

const helloWorld = `moduleName = "hello"

main: function[][
  os.print["Hello World\n"]
]
`

const foreignExample = `moduleName = "foreign"

main: function[][
BEGIN_FOREIGN_CODE_C
  char* hello_str = "hello\n";
END_FOREIGN_CODE_C
BEGIN_FOREIGN_CODE_PYTHON
  hello_str = 'hello\n'
END_FOREIGN_CODE_PYTHON
BEGIN_FOREIGN_CODE_GO
  hello_str := "hello\n"
END_FOREIGN_CODE_GO
BEGIN_FOREIGN_CODE_JAVASCRIPT
  const hello_str = 'hello\n';
END_FOREIGN_CODE_JAVASCRIPT
BEGIN_FOREIGN_CODE_JAVA
    String hello_str = "hello\n";
END_FOREIGN_CODE_JAVA
BEGIN_FOREIGN_CODE_DOTNET
    string hello_str = "hello\n";
END_FOREIGN_CODE_DOTNET
  os.print[hello_str]
]
`

func parse(t testing.TB, src string) *ast.Module {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hs", []byte(src))
	mod, err := parser.Parse(lexer.Tokenize(fs.Get(id), lexer.Options{}), parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return mod
}

func emit(t testing.TB, target string, src string, cfg Config) []Artifact {
	t.Helper()
	arts, err := Emit(target, parse(t, src), cfg)
	if err != nil {
		t.Fatalf("emit %s: %v", target, err)
	}
	return arts
}

func expectArtifacts(t *testing.T, got []Artifact, want []Artifact) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d artifacts, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("artifact %d name %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].Content != want[i].Content {
			t.Errorf("artifact %s content:\n--- got ---\n%s\n--- want ---\n%s", want[i].Name, got[i].Content, want[i].Content)
		}
	}
}

func TestHelloWorldPerTarget(t *testing.T) {
	cases := []struct {
		target string
		want   []Artifact
	}{
		{"c", []Artifact{
			{Name: "hello.c", Content: "#include <stdio.h>\n\nint main(void) {\n  printf(\"Hello World\\n\");\n  return 0;\n}\n"},
			{Name: "hello.h", Content: ""},
		}},
		{"python", []Artifact{
			{Name: "hello.py", Content: "def main():\n  print(\"Hello World\\n\", end=\"\")\n\n\nif __name__ == '__main__':\n  main()\n"},
		}},
		{"go", []Artifact{
			{Name: "hello/main.go", Content: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Print(\"Hello World\\n\")\n}\n"},
		}},
		{"javascript", []Artifact{
			{Name: "hello.js", Content: "function main() {\n  process.stdout.write(\"Hello World\\n\");\n}\n\nmain();\n"},
		}},
		{"java", []Artifact{
			{Name: "Hello.java", Content: "public class Hello {\n  public static void main(String[] args) {\n    System.out.print(\"Hello World\\n\");\n  }\n}\n"},
		}},
		{"dotnet", []Artifact{
			{Name: "hello.cs", Content: "public static class Program\n{\n  public static void Main()\n  {\n    System.Console.Write(\"Hello World\\n\");\n  }\n}\n"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			expectArtifacts(t, emit(t, tc.target, helloWorld, Config{}), tc.want)
		})
	}
}

func TestForeignCodeFilteredPerTarget(t *testing.T) {
	mod := parse(t, foreignExample)
	c, err := Emit("c", mod, Config{})
	if err != nil {
		t.Fatal(err)
	}
	wantC := "#include <stdio.h>\n\nint main(void) {\n  char* hello_str = \"hello\\n\";\n  printf(\"%s\", hello_str);\n  return 0;\n}\n"
	if c[0].Content != wantC {
		t.Fatalf("c output:\n%s", c[0].Content)
	}

	py, err := Emit("py", mod, Config{})
	if err != nil {
		t.Fatal(err)
	}
	wantPy := "def main():\n  hello_str = 'hello\\n'\n  print(hello_str, end=\"\")\n\n\nif __name__ == '__main__':\n  main()\n"
	if py[0].Content != wantPy {
		t.Fatalf("python output:\n%s", py[0].Content)
	}

	foreignLines := map[string]string{
		"c":          `  char* hello_str = "hello\n";`,
		"python":     `  hello_str = 'hello\n'`,
		"go":         `  hello_str := "hello\n"`,
		"javascript": `  const hello_str = 'hello\n';`,
		"java":       `    String hello_str = "hello\n";`,
		"dotnet":     `    string hello_str = "hello\n";`,
	}
	for _, target := range Targets() {
		arts, err := Emit(string(target), mod, Config{})
		if err != nil {
			t.Fatal(err)
		}
		content := arts[0].Content
		for other, line := range foreignLines {
			has := slices.Contains(splitLines(content), line)
			if other == string(target) && !has {
				t.Errorf("%s: own foreign code %q missing", target, line)
			}
			if other != string(target) && has {
				t.Errorf("%s: foreign code of %s leaked", target, other)
			}
		}
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestEmitIsIdempotent(t *testing.T) {
	mod := parse(t, foreignExample)
	for _, target := range Targets() {
		first, err1 := Emit(string(target), mod, Config{})
		second, err2 := Emit(string(target), mod, Config{})
		if err1 != nil || err2 != nil {
			t.Fatalf("%s: %v %v", target, err1, err2)
		}
		if !slices.Equal(first, second) {
			t.Fatalf("%s: outputs differ between runs", target)
		}
	}
}

func TestNoMainPolicy(t *testing.T) {
	src := `moduleName = "lib"` + "\nhelper: function[] [ os.print['x'] ]"
	want := map[string][]Artifact{
		"c":          {{Name: "lib.c"}, {Name: "lib.h"}},
		"python":     {{Name: "lib.py"}},
		"go":         {{Name: "lib/main.go"}},
		"javascript": {{Name: "lib.js"}},
		"java":       {{Name: "Lib.java", Content: "public class Lib {\n}\n"}},
		"dotnet":     {{Name: "lib.cs", Content: "public static class Program\n{\n}\n"}},
	}
	for target, arts := range want {
		t.Run(target, func(t *testing.T) {
			expectArtifacts(t, emit(t, target, src, Config{}), arts)
		})
	}
}

func TestNilModuleUsesFallbackName(t *testing.T) {
	arts, err := Emit("go", nil, Config{FallbackName: "empty"})
	if err != nil {
		t.Fatal(err)
	}
	expectArtifacts(t, arts, []Artifact{{Name: "empty/main.go"}})

	arts, err = Emit("c", nil, Config{})
	if err != nil {
		t.Fatal(err)
	}
	expectArtifacts(t, arts, []Artifact{{Name: "main.c"}, {Name: "main.h"}})
}

func TestModuleNameFallback(t *testing.T) {
	src := "main: function[] [ os.print['hi'] ]"
	arts := emit(t, "python", src, Config{FallbackName: "script"})
	if arts[0].Name != "script.py" {
		t.Fatalf("name %q, want script.py", arts[0].Name)
	}
	arts = emit(t, "python", `moduleName = 'single'`+"\n"+src, Config{})
	if arts[0].Name != "main.py" {
		t.Fatalf("single-quoted moduleName must be ignored, got %q", arts[0].Name)
	}
	arts = emit(t, "c", `moduleName = "../evil"`+"\n"+src, Config{})
	if arts[0].Name != ".._evil.c" {
		t.Fatalf("path separators must be replaced, got %q", arts[0].Name)
	}
}

func TestEmptyBodies(t *testing.T) {
	src := `moduleName = "quiet"` + "\nmain: function[] [ os.print[] ]"
	expectArtifacts(t, emit(t, "python", src, Config{}), []Artifact{
		{Name: "quiet.py", Content: "def main():\n  pass\n\n\nif __name__ == '__main__':\n  main()\n"},
	})
	expectArtifacts(t, emit(t, "go", src, Config{}), []Artifact{
		{Name: "quiet/main.go", Content: "package main\n\nimport \"fmt\"\n\nvar _ = fmt.Print\n\nfunc main() {\n}\n"},
	})
}

func TestArgumentRendering(t *testing.T) {
	src := `moduleName = "args"
main: function[] [
  os.print['it\'s "quoted"']
  os.print[42.5]
  os.print[greeting]
  os.print["it\'s\n"]
]`
	cases := map[string][]string{
		"c":          {`  printf("it's \"quoted\"");`, `  printf("42.5");`, `  printf("%s", greeting);`, `  printf("it's\n");`},
		"python":     {`  print('it\'s "quoted"', end="")`, `  print("42.5", end="")`, `  print(greeting, end="")`, `  print("it\'s\n", end="")`},
		"go":         {"\tfmt.Print(\"it's \\\"quoted\\\"\")", "\tfmt.Print(\"42.5\")", "\tfmt.Print(greeting)", "\tfmt.Print(\"it's\\n\")"},
		"javascript": {`  process.stdout.write('it\'s "quoted"');`, `  process.stdout.write("42.5");`, `  process.stdout.write(String(greeting));`, `  process.stdout.write("it\'s\n");`},
		"java":       {`    System.out.print("it's \"quoted\"");`, `    System.out.print("42.5");`, `    System.out.print(greeting);`, `    System.out.print("it's\n");`},
		"dotnet":     {`    System.Console.Write("it's \"quoted\"");`, `    System.Console.Write("42.5");`, `    System.Console.Write(greeting);`, `    System.Console.Write("it's\n");`},
	}
	for target, lines := range cases {
		content := emit(t, target, src, Config{})[0].Content
		got := splitLines(content)
		for _, want := range lines {
			if !slices.Contains(got, want) {
				t.Errorf("%s: missing line %q in\n%s", target, want, content)
			}
		}
	}
}

func TestGoForeignBlockCanUseFmt(t *testing.T) {
	src := "moduleName = \"gof\"\nmain: function[][\nBEGIN_FOREIGN_CODE_GO\n\tfmt.Println(\"hi\")\nEND_FOREIGN_CODE_GO\n]\n"
	expectArtifacts(t, emit(t, "go", src, Config{}), []Artifact{
		{Name: "gof/main.go", Content: "package main\n\nimport \"fmt\"\n\nvar _ = fmt.Print\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"},
	})
}

func TestUnterminatedLiteralsClose(t *testing.T) {
	cases := []struct {
		raw        string
		quoted     string
		keepQuotes string
	}{
		{`"abc`, `"abc"`, `"abc"`},
		{`"abc\`, `"abc\\"`, `"abc\\"`},
		{`'abc\`, `"abc\\"`, `'abc\\'`},
		{`"abc\\`, `"abc\\"`, `"abc\\"`},
		{`'it\'s`, `"it's"`, `'it\'s'`},
	}
	for _, tc := range cases {
		lit := &ast.StringLiteral{Raw: tc.raw}
		if got := doubleQuoted(lit); got != tc.quoted {
			t.Errorf("doubleQuoted(%s) = %s, want %s", tc.raw, got, tc.quoted)
		}
		if got := rawString(lit); got != tc.keepQuotes {
			t.Errorf("rawString(%s) = %s, want %s", tc.raw, got, tc.keepQuotes)
		}
	}
}

func TestIgnoredCallsAndStrictMode(t *testing.T) {
	src := `moduleName = "m"` + "\nmain: function[] [ os.exit[1] os.print['a'] ]"
	arts := emit(t, "c", src, Config{})
	want := "#include <stdio.h>\n\nint main(void) {\n  printf(\"a\");\n  return 0;\n}\n"
	if arts[0].Content != want {
		t.Fatalf("ignored call must be dropped:\n%s", arts[0].Content)
	}

	_, err := Emit("c", parse(t, src), Config{Strict: true})
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("strict mode: got %v, want *UnsupportedError", err)
	}
	if unsupported.Callee != "os.exit" || unsupported.Target != TargetC {
		t.Fatalf("unexpected error %+v", unsupported)
	}
}

func TestLookupAndAliases(t *testing.T) {
	cases := map[string]Target{
		"c":          TargetC,
		"C":          TargetC,
		"python":     TargetPython,
		"py":         TargetPython,
		" Go ":       TargetGo,
		"golang":     TargetGo,
		"js":         TargetJavaScript,
		"JavaScript": TargetJavaScript,
		"java":       TargetJava,
		"dotnet":     TargetDotNet,
		"csharp":     TargetDotNet,
		"cs":         TargetDotNet,
	}
	for id, want := range cases {
		e, err := Lookup(id)
		if err != nil {
			t.Fatalf("%q: %v", id, err)
		}
		if e.Target() != want {
			t.Errorf("%q resolved to %s, want %s", id, e.Target(), want)
		}
	}
}

func TestUnknownTarget(t *testing.T) {
	_, err := Emit("cobol", parse(t, helloWorld), Config{})
	var unknown *UnknownTargetError
	if !errors.As(err, &unknown) || unknown.ID != "cobol" {
		t.Fatalf("got %v, want *UnknownTargetError", err)
	}
	if err.Error() != "invalid language selected: cobol" {
		t.Fatalf("message %q", err.Error())
	}
}

func TestTargetsOrder(t *testing.T) {
	want := []Target{TargetC, TargetPython, TargetGo, TargetJavaScript, TargetJava, TargetDotNet}
	if got := Targets(); !slices.Equal(got, want) {
		t.Fatalf("Targets() = %v", got)
	}
	for _, tg := range want {
		if Info(tg).ForeignTag == "" || tg.ForeignTag() != Info(tg).ForeignTag {
			t.Errorf("%s: missing foreign tag", tg)
		}
	}
}

func TestJavaClassName(t *testing.T) {
	cases := map[string]string{
		"hello":       "Hello",
		"hello world": "Hello_World",
		"42":          "_42",
		"émile":       "Émile",
	}
	for in, want := range cases {
		if got := javaClassName(in); got != want {
			t.Errorf("javaClassName(%q) = %q, want %q", in, got, want)
		}
	}
}
