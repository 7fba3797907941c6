package dialect

import (
	"fmt"
	"strings"
)

// Kind is one of the languages a foreign block can target.
type Kind uint8

const (
	Unknown Kind = iota
	C
	Python
	Go
	JavaScript
	Java
	DotNet

	kindCount
)

var kindNames = [...]string{
	Unknown:    "unknown",
	C:          "C",
	Python:     "Python",
	Go:         "Go",
	JavaScript: "JavaScript",
	Java:       "Java",
	DotNet:     "C#",
}

var tagKinds = map[string]Kind{
	"C":          C,
	"PYTHON":     Python,
	"GO":         Go,
	"JAVASCRIPT": JavaScript,
	"JAVA":       Java,
	"DOTNET":     DotNet,
}

func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// FromTag maps a BEGIN_FOREIGN_CODE_<TAG> suffix to its Kind.
func FromTag(tag string) Kind {
	return tagKinds[strings.ToUpper(tag)]
}
