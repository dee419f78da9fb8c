package make

import (
	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/lang"
)

// Policy implements ztree.Policy for Make, grounded directly on
// MakeLanguage.cpp's own predicate implementations.
type Policy struct {
	ztree.BasePolicy
}

func init() {
	lang.Register("make", Policy{})
}

func (Policy) Parse(contents, path string, tabWidth int, debug bool) (*ptree.Tree, error) {
	return Parse(contents, path, tabWidth, debug)
}

func (Policy) MapToken(tok int) token.Type {
	return mapToken(tok)
}

func (Policy) ToString(st ptree.SType) string {
	if int(st) < len(stypeNames) {
		return stypeNames[st]
	}
	return "?"
}

// Classify gives comments, directives and includes, assignments
// (Declaration), rules (Function) and calls a category of their own;
// everything else is Other.
func (Policy) Classify(st ptree.SType) token.MType {
	switch st {
	case STComment:
		return token.Comment
	case STDirective, STInclude:
		return token.Directive
	case STAssignmentExpr, STMultilineAssignment:
		return token.Declaration
	case STRule:
		return token.Function
	case STCallExpr:
		return token.Call
	default:
		return token.Other
	}
}

// IsTravellingNode: MakeLanguage::isTravellingNode always returns false.
func (Policy) IsTravellingNode(*ztree.Node) bool {
	return false
}

func (Policy) HasFixedStructure(ptree.SType) bool {
	return false
}

func (Policy) IsUnmovable(n *ztree.Node) bool {
	return n.SType == STStatements
}

func (Policy) IsContainer(n *ztree.Node) bool {
	return n.SType == STStatements
}

func (Policy) IsEolContinuation(st ptree.SType) bool {
	return st == STLineGlue
}

func (Policy) AlwaysMatches(st ptree.SType) bool {
	return st == STMakefile
}

// ShouldSplice flattens a Statements node that sits directly inside
// another Statements (the parser puts conditional branches under IfStmt
// and ElseClause, so those stay nested), and drops the TemporaryContainer wrapper
// this parser never actually emits but which the grounding source
// reserves for exactly this purpose.
func (Policy) ShouldSplice(parent ptree.SType, child *ztree.Node) bool {
	if parent == STStatements && child.SType == STStatements {
		return true
	}
	return child.Type == token.Virtual && child.SType == STTemporaryContainer
}

func (Policy) IsValueNode(st ptree.SType) bool {
	return st == STIfCond
}

// IsLayerBreak matches MakeLanguage::isLayerBreak: a call, an assignment's
// value and a rule's body are all one layer deeper than their header.
func (Policy) IsLayerBreak(_, st ptree.SType) bool {
	switch st {
	case STCallExpr, STAssignmentExpr, STRule, STIfCond:
		return true
	default:
		return false
	}
}

func (Policy) ShouldDropLeadingWS(ptree.SType) bool {
	return false
}

func (Policy) IsSatellite(st ptree.SType) bool {
	return st == STSeparator
}
