package bash

import "github.com/zograscope/zograscope/internal/core/ptree"

// SType constants for the Bash front-end, tracking tree-sitter-bash's
// own grammar node types closely.
const (
	STNone ptree.SType = iota

	STProgram
	STCommand
	STDeclarationCommand
	STNegatedCommand
	STTestCommand
	STUnsetCommand

	STCompoundStatement
	STCStyleForStatement
	STCaseStatement
	STForStatement
	STIfStatement
	STWhileStatement

	STVariableAssignment

	STRedirectedStatement
	STArray
	STBinaryExpression
	STCaseItem
	STCommandName
	STCommandSubstitution
	STConcatenation
	STDoGroup
	STElifClause
	STElseClause
	STExpansion
	STFileRedirect
	STFunctionDefinition
	STHeredocBody
	STList
	STLineContinuation
	STParenthesizedExpression
	STPipeline
	STPostfixExpression
	STProcessSubstitution
	STSimpleExpansion
	STString
	STSubshell
	STTernaryExpression
	STUnaryExpression
	STWord

	STComment
	STVariableName
	STNumber
	STRawString

	STSemicolon
	STNewline
	STLBrace
	STRBrace
	STLParen
	STRParen
	STDollarParen
	STPipe
	STAmp
	STKeyword
)
