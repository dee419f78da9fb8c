package c

import "github.com/zograscope/zograscope/internal/core/ptree"

// SType constants for the C front-end, mapped onto tree-sitter-c's
// actual grammar node types.
const (
	STNone ptree.SType = iota // never assigned explicitly; ptree.None

	STTranslationUnit
	STFunctionDefinition
	STDeclaration
	STParameterList
	STParameterDeclaration
	STCompoundStatement
	STIfStatement
	STElseClause
	STForStatement
	STWhileStatement
	STDoStatement
	STSwitchStatement
	STCaseStatement
	STLabeledStatement
	STReturnStatement
	STBreakStatement
	STContinueStatement
	STGotoStatement
	STExpressionStatement

	STCallExpression
	STArgumentList
	STAssignmentExpression
	STBinaryExpression
	STUnaryExpression
	STUpdateExpression
	STCastExpression
	STSizeofExpression
	STSubscriptExpression
	STFieldExpression
	STParenthesizedExpression
	STCommaExpression
	STPointerExpression
	STConditionalExpression

	STInitDeclarator
	STInitializerList
	STInitializerPair
	STFieldDesignator
	STSubscriptDesignator
	STDeclarator
	STPointerDeclarator
	STArrayDeclarator
	STFunctionDeclarator
	STAbstractPointerDeclarator

	STStructSpecifier
	STUnionSpecifier
	STEnumSpecifier
	STEnumerator
	STEnumeratorList
	STFieldDeclaration
	STFieldDeclarationList
	STTypeDefinition

	STPreprocInclude
	STPreprocDef
	STPreprocFunctionDef
	STPreprocIf
	STPreprocIfdef
	STPreprocElse
	STPreprocElif
	STPreprocCall

	STComment
	STIdentifier
	STFieldIdentifier
	STTypeIdentifier
	STPrimitiveType
	STSizedTypeSpecifier
	STStorageClassSpecifier
	STTypeQualifier
	STNumberLiteral
	STStringLiteral
	STCharLiteral
	STTrueFalse
	STNull

	STComma
	STSemicolon
	STLBrace
	STRBrace
	STLParen
	STRParen
	STLBracket
	STRBracket
	STAssignOp
	STCompareOp
	STLogicalOp
	STArithOp
	STKeyword
	STEllipsis
	STColon
)
