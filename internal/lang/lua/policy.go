// Package lua is the Lua front-end (§6.1): its layer-break and splicing
// choices, and tscommon for the tree-sitter mechanics shared with
// internal/lang/c and internal/lang/bash.
package lua

import (
	tslua "github.com/smacker/go-tree-sitter/lua"

	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/lang"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

var table = tscommon.NewTable(tslua.GetLanguage(), nodeSpecs)

// Policy implements ztree.Policy for Lua.
type Policy struct {
	ztree.BasePolicy
}

func init() {
	lang.Register("lua", Policy{})
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

// Classify maps a Lua SType to its coarse semantic category.
func (Policy) Classify(st ptree.SType) token.MType {
	switch st {
	case STFunctionDeclaration:
		return token.Function
	case STFunctionCall:
		return token.Call
	case STVariableDeclaration:
		return token.Declaration
	case STBlock:
		return token.Block
	case STIfStatement, STElseifStatement, STElseStatement, STDoStatement,
		STRepeatStatement, STWhileStatement, STForInStatement,
		STForNumericStatement, STLabelStatement,
		STReturnStatement, STBreakStatement, STGotoStatement:
		return token.Statement
	case STComment:
		return token.Comment
	default:
		return token.Other
	}
}

// IsTravellingNode lets comments float, same rationale as the other
// tree-sitter front-ends.
func (Policy) IsTravellingNode(n *ztree.Node) bool {
	return n.Type == token.Comments
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

// ShouldSplice flattens a call's argument list straight into the call
// node, and a function's parameter list straight into its declaration.
func (Policy) ShouldSplice(parent ptree.SType, child *ztree.Node) bool {
	switch {
	case parent == STFunctionCall && child.SType == STArguments:
		return true
	case parent == STFunctionDeclaration && child.SType == STParameters:
		return true
	default:
		return false
	}
}

func (Policy) IsValueNode(st ptree.SType) bool {
	switch st {
	case STIdentifier, STFunctionName:
		return true
	default:
		return false
	}
}

// IsLayerBreak places a function's body one layer deeper so whole
// function extractions show up as a move rather than a mass of
// statement-level edits (§5, scenario S4).
func (Policy) IsLayerBreak(_, st ptree.SType) bool {
	return st == STFunctionDeclaration
}

func (Policy) ShouldDropLeadingWS(st ptree.SType) bool {
	return st == STComment || st == STString
}

func (Policy) IsSatellite(st ptree.SType) bool {
	switch st {
	case STSemicolon, STDo, STEnd, STLBrace, STRBrace, STLParen, STRParen,
		STComma, STKeyword:
		return true
	default:
		return false
	}
}
