package format

import (
	"errors"
	"testing"

	"headspace/internal/diag"
	"headspace/internal/parser"
)

func TestFormatSource(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "hello",
			src:  "moduleName   =  \"hello\"\nmain :function [ ] [ os . print [ \"Hello World\\n\" ] ]",
			want: "moduleName = \"hello\"\nmain: function[][\n  os.print[\"Hello World\\n\"]\n]\n",
		},
		{
			name: "declarations",
			src:  "x:int32 y=4.5",
			want: "x: int32\ny = 4.5\n",
		},
		{
			name: "empty body",
			src:  "main: function[] []",
			want: "main: function[][]\n",
		},
		{
			name: "blank lines collapse",
			src:  "a = 1\n\n\n\nb = 2\n\n\n",
			want: "a = 1\n\nb = 2\n",
		},
		{
			name: "comments kept",
			src:  "// header\nx = 1 // tail\n\n/* block */\nmain: function[] [ // open\n  os.print['a']\n\n  // inside\n  a.b[]\n]\n",
			want: "// header\nx = 1 // tail\n\n/* block */\nmain: function[][ // open\n  os.print['a']\n\n  // inside\n  a.b[]\n]\n",
		},
		{
			name: "comment inside call is copied",
			src:  "main: function[][\n      os.print[ /* c */ 'a' ]\n]",
			want: "main: function[][\n  os.print[ /* c */ 'a' ]\n]\n",
		},
		{
			name: "foreign lines verbatim",
			src:  "main: function[][\n    BEGIN_FOREIGN_CODE_C\n  if (x) {\n      puts(\"y\");\n  }\n        END_FOREIGN_CODE_C\n]\n",
			want: "main: function[][\n  BEGIN_FOREIGN_CODE_C\n  if (x) {\n      puts(\"y\");\n  }\n  END_FOREIGN_CODE_C\n]\n",
		},
		{
			name: "empty input",
			src:  "",
			want: "",
		},
		{
			name: "only a comment",
			src:  "// nothing yet",
			want: "// nothing yet\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatSource("t.hs", []byte(tc.src), Options{})
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("mismatch\nwant %q\ngot  %q", tc.want, got)
			}
			res, err := CheckRoundTrip("t.hs", []byte(tc.src), Options{})
			if err != nil {
				t.Fatalf("round trip: %v", err)
			}
			if res.Changed != (tc.src != tc.want) {
				t.Fatalf("Changed = %v", res.Changed)
			}
		})
	}
}

func TestFormatTabs(t *testing.T) {
	got, err := FormatSource("t.hs", []byte("main: function[][ f[] ]"), Options{UseTabs: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := "main: function[][\n\tf[]\n]\n"; string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got, err = FormatSource("t.hs", []byte("main: function[][ f[] ]"), Options{IndentWidth: 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := "main: function[][\n    f[]\n]\n"; string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatRefusesLossyInput(t *testing.T) {
	cases := map[string]diag.Code{
		"x = 1\n!!! trailing": diag.SynUnexpectedTopLevel,
		"x = 'open":           diag.LexUnterminatedString,
	}
	for src, code := range cases {
		_, err := FormatSource("t.hs", []byte(src), Options{})
		var ue *UnformattableError
		if !errors.As(err, &ue) {
			t.Fatalf("%q: want UnformattableError, got %v", src, err)
		}
		if ue.Diag.Code != code {
			t.Errorf("%q: code %s, want %s", src, ue.Diag.Code.ID(), code.ID())
		}
		if !errors.Is(err, ErrUnformattable) {
			t.Errorf("%q: must wrap ErrUnformattable", src)
		}
	}

	_, err := FormatSource("t.hs", []byte("main: function[x][]"), Options{})
	var pe *parser.ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrUnformattable) {
		t.Fatalf("parse error: got %v", err)
	}
}

func TestShape(t *testing.T) {
	a, _ := FormatSource("t.hs", []byte("x = 'a'"), Options{})
	if Shape(nil) != "" {
		t.Fatal("nil module has an empty shape")
	}
	if string(a) != "x = 'a'\n" {
		t.Fatalf("got %q", a)
	}
}
