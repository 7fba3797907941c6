package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnexpectedEOF        Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectColon          Code = 2004
	SynExpectLeftBracket    Code = 2005
	SynExpectRightBracket   Code = 2006
	SynExpectLiteral        Code = 2007
	SynExpectArgument       Code = 2008
	SynForeignMissingEnd    Code = 2009
	SynForeignEmptyTag      Code = 2010
	SynUnexpectedTopLevel   Code = 2101
	SynTrailingAfterProgram Code = 2107

	// Tree checks
	SemaInfo              Code = 3000
	SemaIgnoredStatement  Code = 3001
	SemaMissingModuleName Code = 3002
	SemaMissingMain       Code = 3003
	SemaUnsupported       Code = 3004
	SemaForeignDialect    Code = 3005

	// IO
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Project / target selection
	ProjInfo          Code = 5000
	ProjManifestError Code = 5001
	ProjUnknownTarget Code = 5002

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedEOF:            "Unexpected end of input",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectColon:              "Expected ':'",
	SynExpectLeftBracket:        "Expected '['",
	SynExpectRightBracket:       "Expected ']'",
	SynExpectLiteral:            "Expected string or number literal",
	SynExpectArgument:           "Expected call argument",
	SynForeignMissingEnd:        "Foreign code block is not closed",
	SynForeignEmptyTag:          "Foreign code block has an empty tag",
	SynUnexpectedTopLevel:       "Unrecognized top-level construct",
	SynTrailingAfterProgram:     "Tokens after the program statement",
	SemaInfo:                    "Semantic information",
	SemaIgnoredStatement:        "Statement has no effect on the output",
	SemaMissingModuleName:       "Missing moduleName assignment",
	SemaMissingMain:             "Missing main function",
	SemaUnsupported:             "Construct not supported by target",
	SemaForeignDialect:          "Foreign block looks like another language",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	IOCacheError:                "Artifact cache error",
	ProjInfo:                    "Project information",
	ProjManifestError:           "Invalid headspace.toml",
	ProjUnknownTarget:           "Unknown target language",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
