package ast

// Kind names a syntax node variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindModule
	KindDeclaration
	KindFunctionDeclaration
	KindFunctionDefinition
	KindParameterList
	KindCodeBlock
	KindForeignCodeBlock
	KindFunctionCall
	KindIdentifierChain
	KindFunctionCallArguments
	KindAssignment
	KindIdentifier
	KindVariableType
	KindDeclarationMarker
	KindAssignmentOperator
	KindStringLiteral
	KindNumberLiteral
	KindSpaces
)

var kindNames = [...]string{
	KindInvalid:               "Invalid",
	KindModule:                "Module",
	KindDeclaration:           "Declaration",
	KindFunctionDeclaration:   "FunctionDeclaration",
	KindFunctionDefinition:    "FunctionDefinition",
	KindParameterList:         "ParameterList",
	KindCodeBlock:             "CodeBlock",
	KindForeignCodeBlock:      "ForeignCodeBlock",
	KindFunctionCall:          "FunctionCall",
	KindIdentifierChain:       "IdentifierChain",
	KindFunctionCallArguments: "FunctionCallArguments",
	KindAssignment:            "Assignment",
	KindIdentifier:            "Identifier",
	KindVariableType:          "VariableType",
	KindDeclarationMarker:     "DeclarationMarker",
	KindAssignmentOperator:    "AssignmentOperator",
	KindStringLiteral:         "StringLiteral",
	KindNumberLiteral:         "NumberLiteral",
	KindSpaces:                "Spaces",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsLeaf reports whether nodes of this kind carry text instead of children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindParameterList, KindForeignCodeBlock, KindIdentifier, KindVariableType,
		KindDeclarationMarker, KindAssignmentOperator, KindStringLiteral,
		KindNumberLiteral, KindSpaces:
		return true
	}
	return false
}
