package dialect

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

// keywordSignals is matched case-sensitively: None is Python, none is not.
var keywordSignals = map[string][]keywordSignal{
	// C
	"printf": {{Dialect: C, Score: 4, Reason: "C call `printf`"}},
	"puts":   {{Dialect: C, Score: 4, Reason: "C call `puts`"}},
	"malloc": {{Dialect: C, Score: 5, Reason: "C call `malloc`"}},
	"free":   {{Dialect: C, Score: 2, Reason: "C call `free`"}},
	"sizeof": {{Dialect: C, Score: 4, Reason: "C operator `sizeof`"}},
	"NULL":   {{Dialect: C, Score: 4, Reason: "C macro `NULL`"}},
	"char":   {{Dialect: C, Score: 2, Reason: "C type `char`"}, {Dialect: Java, Score: 1, Reason: "java type `char`"}},
	"struct": {{Dialect: C, Score: 3, Reason: "C keyword `struct`"}, {Dialect: DotNet, Score: 1, Reason: "C# keyword `struct`"}},

	// Python
	"def":      {{Dialect: Python, Score: 5, Reason: "python keyword `def`"}},
	"elif":     {{Dialect: Python, Score: 6, Reason: "python keyword `elif`"}},
	"None":     {{Dialect: Python, Score: 5, Reason: "python `None`"}},
	"True":     {{Dialect: Python, Score: 3, Reason: "python `True`"}},
	"False":    {{Dialect: Python, Score: 3, Reason: "python `False`"}},
	"self":     {{Dialect: Python, Score: 3, Reason: "python `self`"}},
	"lambda":   {{Dialect: Python, Score: 4, Reason: "python keyword `lambda`"}},
	"pass":     {{Dialect: Python, Score: 4, Reason: "python keyword `pass`"}},
	"__name__": {{Dialect: Python, Score: 6, Reason: "python `__name__`"}},

	// Go
	"func":    {{Dialect: Go, Score: 5, Reason: "go keyword `func`"}},
	"defer":   {{Dialect: Go, Score: 6, Reason: "go keyword `defer`"}},
	"chan":    {{Dialect: Go, Score: 6, Reason: "go keyword `chan`"}},
	"nil":     {{Dialect: Go, Score: 3, Reason: "go `nil`"}},
	"package": {{Dialect: Go, Score: 3, Reason: "go keyword `package`"}, {Dialect: Java, Score: 2, Reason: "java keyword `package`"}},
	"fmt":     {{Dialect: Go, Score: 3, Reason: "go package `fmt`"}},

	// JavaScript
	"function":  {{Dialect: JavaScript, Score: 5, Reason: "javascript keyword `function`"}},
	"let":       {{Dialect: JavaScript, Score: 4, Reason: "javascript keyword `let`"}},
	"undefined": {{Dialect: JavaScript, Score: 6, Reason: "javascript `undefined`"}},
	"require":   {{Dialect: JavaScript, Score: 4, Reason: "javascript call `require`"}},
	"console":   {{Dialect: JavaScript, Score: 4, Reason: "javascript object `console`"}},
	"const":     {{Dialect: JavaScript, Score: 2, Reason: "javascript keyword `const`"}, {Dialect: C, Score: 1, Reason: "C qualifier `const`"}},
	"var": {
		{Dialect: JavaScript, Score: 2, Reason: "javascript keyword `var`"},
		{Dialect: DotNet, Score: 2, Reason: "C# keyword `var`"},
	},

	// Java
	"System":     {{Dialect: Java, Score: 4, Reason: "java class `System`"}},
	"extends":    {{Dialect: Java, Score: 4, Reason: "java keyword `extends`"}},
	"implements": {{Dialect: Java, Score: 4, Reason: "java keyword `implements`"}},
	"final":      {{Dialect: Java, Score: 4, Reason: "java keyword `final`"}},
	"throws":     {{Dialect: Java, Score: 5, Reason: "java keyword `throws`"}},
	"boolean":    {{Dialect: Java, Score: 4, Reason: "java type `boolean`"}},
	"String":     {{Dialect: Java, Score: 2, Reason: "java type `String`"}, {Dialect: DotNet, Score: 1, Reason: "C# type `String`"}},
	"public": {
		{Dialect: Java, Score: 2, Reason: "java modifier `public`"},
		{Dialect: DotNet, Score: 2, Reason: "C# modifier `public`"},
	},

	// C#
	"Console":   {{Dialect: DotNet, Score: 4, Reason: "C# class `Console`"}},
	"using":     {{Dialect: DotNet, Score: 4, Reason: "C# keyword `using`"}},
	"namespace": {{Dialect: DotNet, Score: 4, Reason: "C# keyword `namespace`"}},
	"foreach":   {{Dialect: DotNet, Score: 5, Reason: "C# keyword `foreach`"}},
	"string":    {{Dialect: DotNet, Score: 2, Reason: "C# type `string`"}},
	"bool":      {{Dialect: DotNet, Score: 2, Reason: "C# type `bool`"}, {Dialect: C, Score: 1, Reason: "C type `bool`"}},
}

// RecordIdent collects keyword evidence for an identifier.
func RecordIdent(e *Evidence, ident string) {
	if e == nil || ident == "" {
		return
	}
	for _, sig := range keywordSignals[ident] {
		e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason})
	}
}
