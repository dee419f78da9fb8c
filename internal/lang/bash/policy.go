// Package bash is the Bash front-end (§6.1): a lighter policy than C's
// (travelling comments, a function body as its one layer-break), using
// tscommon for the tree-sitter mechanics shared with internal/lang/c.
package bash

import (
	tsbash "github.com/smacker/go-tree-sitter/bash"

	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/lang"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

var table = tscommon.NewTable(tsbash.GetLanguage(), nodeSpecs)

// Policy implements ztree.Policy for Bash.
type Policy struct {
	ztree.BasePolicy
}

func init() {
	lang.Register("bash", Policy{})
}

func (Policy) Parse(contents, path string, tabWidth int, debug bool) (*ptree.Tree, error) {
	return tscommon.Parse(table, contents, path, debug)
}

func (Policy) MapToken(tok int) token.Type {
	return table.MapToken(tok)
}

func (Policy) ToString(st ptree.SType) string {
	if int(st) < len(stypeNames) {
		return stypeNames[st]
	}
	return "?"
}

// Classify maps a Bash SType to its coarse semantic category.
func (Policy) Classify(st ptree.SType) token.MType {
	switch st {
	case STFunctionDefinition:
		return token.Function
	case STCommand:
		return token.Call
	case STVariableAssignment:
		return token.Declaration
	case STCompoundStatement, STDoGroup:
		return token.Block
	case STIfStatement, STElseClause, STElifClause, STForStatement,
		STCStyleForStatement, STWhileStatement, STCaseStatement, STCaseItem,
		STRedirectedStatement, STPipeline, STList, STNegatedCommand,
		STTestCommand, STUnsetCommand, STDeclarationCommand:
		return token.Statement
	case STComment:
		return token.Comment
	default:
		return token.Other
	}
}

// IsTravellingNode lets comments float (Bash's grammar, like most
// tree-sitter grammars, doesn't place them at a fixed grammar slot).
func (Policy) IsTravellingNode(n *ztree.Node) bool {
	return n.Type == token.Comments
}

// IsEolContinuation flags a trailing backslash-newline (§6.1).
func (Policy) IsEolContinuation(st ptree.SType) bool {
	return st == STLineContinuation
}

func (Policy) IsUnmovable(n *ztree.Node) bool {
	return n.MType == token.Block || n.SType == STProgram
}

func (Policy) IsContainer(n *ztree.Node) bool {
	return n.MType == token.Block || n.SType == STProgram
}

func (Policy) AlwaysMatches(st ptree.SType) bool {
	return st == STProgram
}

// ShouldSplice flattens a concatenation (one word built from adjacent
// pieces) that sits directly under a command straight into the command
// node.
func (Policy) ShouldSplice(parent ptree.SType, child *ztree.Node) bool {
	return parent == STCommand && child.SType == STConcatenation
}

func (Policy) IsValueNode(st ptree.SType) bool {
	switch st {
	case STCommandName, STWord, STVariableName:
		return true
	default:
		return false
	}
}

// IsLayerBreak places a function's body one layer deeper, same rationale
// as the C front-end.
func (Policy) IsLayerBreak(_, st ptree.SType) bool {
	return st == STFunctionDefinition
}

func (Policy) ShouldDropLeadingWS(st ptree.SType) bool {
	return st == STComment || st == STHeredocBody
}

func (Policy) IsSatellite(st ptree.SType) bool {
	switch st {
	case STSemicolon, STNewline, STLBrace, STRBrace, STLParen, STRParen,
		STDollarParen, STKeyword:
		return true
	default:
		return false
	}
}
