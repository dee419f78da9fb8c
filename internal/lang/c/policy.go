// Package c is the C front-end (§6.1): a tree-sitter-backed Parse plus the
// Policy predicates that shape a C parse into the comparator's canonical
// Tree — which structural distinctions and splicing/layering/satellite
// decisions a C policy needs to make (§4.2, §4.3, §4.6), mapped onto
// tree-sitter-c's actual node shapes.
package c

import (
	tsc "github.com/smacker/go-tree-sitter/c"

	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/lang"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

var table = tscommon.NewTable(tsc.GetLanguage(), nodeSpecs)

// Policy implements ztree.Policy for C.
type Policy struct {
	ztree.BasePolicy
}

func init() {
	lang.Register("c", Policy{})
}

// Parse runs tree-sitter-c over contents (§6.1 "parse").
func (Policy) Parse(contents, path string, tabWidth int, debug bool) (*ptree.Tree, error) {
	return tscommon.Parse(table, contents, path, debug)
}

// MapToken translates a tree-sitter-c node-type id into a token.Type.
func (Policy) MapToken(tok int) token.Type {
	return table.MapToken(tok)
}

// ToString renders an SType by its CamelCase name from stypeNames, for
// --dump-tree.
func (Policy) ToString(st ptree.SType) string {
	return stypeNames[st]
}

// Classify maps a C SType to its coarse semantic category (§3.5).
func (Policy) Classify(st ptree.SType) token.MType {
	switch st {
	case STFunctionDefinition:
		return token.Function
	case STCallExpression:
		return token.Call
	case STParameterDeclaration:
		return token.Parameter
	case STDeclaration, STInitDeclarator, STFieldDeclaration, STTypeDefinition,
		STStructSpecifier, STUnionSpecifier, STEnumSpecifier, STEnumerator:
		return token.Declaration
	case STCompoundStatement, STFieldDeclarationList, STEnumeratorList:
		return token.Block
	case STIfStatement, STElseClause, STForStatement, STWhileStatement,
		STDoStatement, STSwitchStatement, STCaseStatement, STLabeledStatement,
		STReturnStatement, STBreakStatement, STContinueStatement, STGotoStatement,
		STExpressionStatement:
		return token.Statement
	case STComment:
		return token.Comment
	case STPreprocInclude, STPreprocDef, STPreprocFunctionDef, STPreprocIf,
		STPreprocIfdef, STPreprocElse, STPreprocElif, STPreprocCall:
		return token.Directive
	default:
		return token.Other
	}
}

// IsTravellingNode lets comments and preprocessor directives float to
// their source position among fixed siblings (§4.2.4).
func (Policy) IsTravellingNode(n *ztree.Node) bool {
	return n.Type == token.Comments || n.Type == token.Directives
}

// HasFixedStructure reports a for-loop as fixed-structure (§4.4
// "hasFixedStructure"). TED does not consult this predicate.
func (Policy) HasFixedStructure(st ptree.SType) bool {
	return st == STForStatement
}

// IsUnmovable reports blocks and the translation unit (§4.6). markMoved
// does not consult it.
func (Policy) IsUnmovable(n *ztree.Node) bool {
	return n.MType == token.Block || n.SType == STTranslationUnit
}

// IsContainer reports the same set as IsUnmovable. Only ztree's
// hasMoveableItems helper reads it, and nothing calls that helper.
func (Policy) IsContainer(n *ztree.Node) bool {
	return n.MType == token.Block || n.SType == STTranslationUnit
}

// AlwaysMatches forces the translation unit to map root-to-root
// regardless of content (§4.4).
func (Policy) AlwaysMatches(st ptree.SType) bool {
	return st == STTranslationUnit
}

// IsPseudoParameter recognizes a lone `void` in a parameter list as a
// placeholder, not a real parameter.
func (Policy) IsPseudoParameter(n *ztree.Node) bool {
	return n.SType == STPrimitiveType && n.Label == "void"
}

// ShouldSplice splices an argument list into its call and a parameter
// list into its declarator (§4.2 "Materialization").
func (Policy) ShouldSplice(parent ptree.SType, child *ztree.Node) bool {
	switch {
	case parent == STCallExpression && child.SType == STArgumentList:
		return true
	case parent == STFunctionDeclarator && child.SType == STParameterList:
		return true
	default:
		return false
	}
}

// IsValueNode lets an identifier's label bubble up through its
// declarator chain to name the declaration/function/call it belongs to.
func (Policy) IsValueNode(st ptree.SType) bool {
	switch st {
	case STIdentifier, STFieldIdentifier, STTypeIdentifier,
		STFunctionDeclarator, STPointerDeclarator, STArrayDeclarator,
		STInitDeclarator, STDeclarator:
		return true
	default:
		return false
	}
}

// IsLayerBreak places a function's body, a call's arguments and a
// declaration's initializer one layer deeper (§3.2), so edits inside
// don't force the header to re-match elsewhere (S4's function-extraction
// scenario depends on this).
func (Policy) IsLayerBreak(_, st ptree.SType) bool {
	switch st {
	case STFunctionDefinition, STCallExpression, STDeclaration:
		return true
	default:
		return false
	}
}

// ShouldDropLeadingWS strips a block comment's embedded indentation from
// its comparison label, keeping its original Spelling for printing.
func (Policy) ShouldDropLeadingWS(st ptree.SType) bool {
	return st == STComment
}

// IsSatellite marks pure punctuation and the stable keyword leaf of an
// already-tagged statement as tracking their parent's state rather than
// being compared on their own (§4.6).
func (Policy) IsSatellite(st ptree.SType) bool {
	switch st {
	case STComma, STSemicolon, STLBrace, STRBrace, STLParen, STRParen,
		STLBracket, STRBracket, STColon, STEllipsis, STAssignOp, STKeyword:
		return true
	default:
		return false
	}
}
