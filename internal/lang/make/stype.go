// Package make is the Makefile front-end (§6.1): no tree-sitter grammar
// exists for Make, so unlike the C/Bash/Lua front-ends it carries its
// own hand-written lexer and recursive-descent parser.
package make

import "github.com/zograscope/zograscope/internal/core/ptree"

// SType constants for the Make front-end, a direct port of MakeSType.hpp's
// enumeration onto ptree.SType.
const (
	STNone ptree.SType = iota
	STLineGlue
	STMakefile
	STStatements
	STSeparator
	STIfStmt
	STIfCond
	STElseClause
	STMultilineAssignment
	STTemporaryContainer
	STInclude
	STDirective
	STComment
	STAssignmentExpr
	STCallExpr
	STArgumentList
	STArgument
	STRule
	STTargetList
	STPrereqList
	STRecipe
	STRecipeLine
	STPunctuation
	STIdentifier
	STText
)
