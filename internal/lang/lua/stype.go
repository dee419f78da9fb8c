package lua

import "github.com/zograscope/zograscope/internal/core/ptree"

// SType constants for the Lua front-end, mapped onto the
// smacker/go-tree-sitter/lua grammar's node types (a handful —
// Table/Field — are kept distinct, others folded where the grammar
// doesn't distinguish them).
const (
	STNone ptree.SType = iota

	STProgram
	STFunctionDeclaration
	STFunctionName
	STParameters
	STFunctionCall
	STArguments
	STVariableDeclaration
	STVariableDeclarator
	STUnaryExpression
	STBinaryExpression
	STIfStatement
	STElseifStatement
	STElseStatement
	STDoStatement
	STRepeatStatement
	STWhileStatement
	STForInStatement
	STForNumericStatement
	STGotoStatement
	STLabelStatement
	STReturnStatement
	STBreakStatement
	STBlock
	STTableConstructor
	STField
	STDotIndexExpression
	STBracketIndexExpression
	STMethodIndexExpression

	STComment
	STIdentifier
	STNumber
	STString
	STNil
	STTrue
	STFalse
	STVararg

	STSemicolon
	STDo
	STEnd
	STLBrace
	STRBrace
	STLParen
	STRParen
	STComma
	STKeyword
	STAssignOp
)
