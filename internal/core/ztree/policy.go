package ztree

import (
	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
)

// Policy is the contract a language front-end implements to plug into the
// comparator (§6.1 "Language policy"). It lives in this package, rather
// than in package lang alongside the registry, because materialize and
// transform call it directly while building and shaping a Tree; package
// lang only needs to store and look up values that satisfy it, so keeping
// the interface here avoids a lang <-> ztree import cycle.
//
// Every predicate below has a natural default, which BasePolicy supplies;
// a concrete front-end embeds BasePolicy and overrides only the methods
// where its language actually differs from the common case.
type Policy interface {
	// Parse turns file contents into a parse tree. path is used only for
	// diagnostics (front-ends that need a grammar keyed by extension get
	// that decision from the lang registry, not from here). tabWidth is
	// the column width a tab character expands to; debug requests the
	// front-end log its own parse trace to internal/core/diag.
	Parse(contents, path string, tabWidth int, debug bool) (*ptree.Tree, error)

	// MapToken maps a front-end-specific token id (PNode.Token) to a
	// token.Type. Called once per leaf during materialization.
	MapToken(tok int) token.Type

	// Classify maps a structural tag to its coarse semantic category.
	Classify(st ptree.SType) token.MType
	// ToString renders a structural tag for diagnostics (--dump-tree).
	ToString(st ptree.SType) string

	// IsTravellingNode reports whether a node has no fixed position in the
	// tree and may move between internal nodes as long as the post-order
	// of leaves is preserved (e.g. a comment).
	IsTravellingNode(n *Node) bool
	// HasFixedStructure reports whether nodes of this structural tag have
	// a fixed number of children at fixed positions. TED's relabel-cost
	// rule does not consult it: children of such nodes are matched by
	// content like any others.
	HasFixedStructure(st ptree.SType) bool
	// CanBeFlattened reports whether child may be flattened into parent at
	// the given coarse-reduction level (§4.3).
	CanBeFlattened(parent *Node, child *Node, level int) bool
	// IsUnmovable reports whether a front-end considers a node unmovable
	// (e.g. a statement list). Move detection (markMoved) does not consult
	// it, so such a node can still be flagged Moved.
	IsUnmovable(n *Node) bool
	// IsContainer reports whether a node holds other moveable items. The
	// hasMoveableItems helper combines it with IsUnmovable; nothing in the
	// comparison pipeline calls that helper.
	IsContainer(n *Node) bool
	// IsDiffable reports whether a node's spelling can be token-diffed
	// when the node is Updated, rather than shown as a flat replacement.
	IsDiffable(n *Node) bool
	// IsStructural reports whether a node is a purely syntactic token
	// (braces, brackets) with no semantic weight of its own.
	IsStructural(n *Node) bool
	// IsEolContinuation reports whether a structural tag marks a line
	// continuation token.
	IsEolContinuation(st ptree.SType) bool
	// AlwaysMatches reports whether any two nodes of this structural tag
	// should be treated as matching regardless of label (e.g. a language's
	// sole top-level "file" node).
	AlwaysMatches(st ptree.SType) bool
	// IsPseudoParameter reports whether a node classified as Parameter by
	// Classify is actually a placeholder (e.g. an empty argument list)
	// rather than a true parameter.
	IsPseudoParameter(n *Node) bool

	// ShouldSplice reports whether child should be replaced in parent by
	// child's own children, because child itself carries no structural
	// identity worth preserving as a separate node.
	ShouldSplice(parent ptree.SType, child *Node) bool
	// IsValueNode reports whether a node of this structural tag is the
	// "value" of its parent (its Label becomes the parent's Label too).
	IsValueNode(st ptree.SType) bool
	// IsLayerBreak reports whether a node of this structural tag, given
	// its parent's tag, should be placed one layer deeper via Next
	// (§3.2).
	IsLayerBreak(parent, st ptree.SType) bool
	// ShouldDropLeadingWS reports whether leading whitespace following an
	// embedded newline in a node's own spelling should be dropped from
	// its Label (not its Spelling) for comparison purposes.
	ShouldDropLeadingWS(st ptree.SType) bool
	// IsSatellite reports whether nodes of this structural tag are
	// secondary for comparison: their state is inherited from their
	// parent rather than computed directly (§4.6).
	IsSatellite(st ptree.SType) bool
}

// hasMoveableItems reports whether node's subtree should be scanned for
// move candidates: either it isn't unmovable itself, or it's a container
// (and so its children might still hold moveable items even if it isn't
// one itself). Not part of Policy: every front-end gets this for free,
// computed from IsUnmovable and IsContainer.
func hasMoveableItems(p Policy, n *Node) bool {
	return !p.IsUnmovable(n) || p.IsContainer(n)
}

// BasePolicy implements Policy with the defaults every front-end shares
// (Language::isDiffable/isStructural/hasMoveableItems from the reference
// implementation). A front-end embeds BasePolicy and overrides whichever
// methods its grammar actually needs to specialize; MapToken, Classify,
// ToString, Parse and the structural predicates tied to a concrete SType
// enumeration have no sensible default and must always be overridden.
type BasePolicy struct{}

// IsDiffable reports true for the token categories whose spelling is
// usually worth a token-level diff rather than a flat replacement.
func (BasePolicy) IsDiffable(n *Node) bool {
	switch n.Type {
	case token.Comments, token.StrConstants, token.Functions, token.Identifiers, token.UserTypes:
		return true
	default:
		return false
	}
}

// IsStructural reports true for bracket tokens.
func (BasePolicy) IsStructural(n *Node) bool {
	switch n.Type {
	case token.LeftBrackets, token.RightBrackets:
		return true
	default:
		return false
	}
}

// IsEolContinuation defaults to false; only shell-like grammars with a
// backslash-newline token need to override this.
func (BasePolicy) IsEolContinuation(ptree.SType) bool { return false }

// AlwaysMatches defaults to false.
func (BasePolicy) AlwaysMatches(ptree.SType) bool { return false }

// IsPseudoParameter defaults to false.
func (BasePolicy) IsPseudoParameter(*Node) bool { return false }

// IsTravellingNode defaults to false: most nodes have a fixed position.
func (BasePolicy) IsTravellingNode(*Node) bool { return false }

// HasFixedStructure defaults to false.
func (BasePolicy) HasFixedStructure(ptree.SType) bool { return false }

// IsContainer defaults to false.
func (BasePolicy) IsContainer(*Node) bool { return false }

// IsUnmovable defaults to false: most nodes are candidates for move
// detection.
func (BasePolicy) IsUnmovable(*Node) bool { return false }

// ShouldDropLeadingWS defaults to false.
func (BasePolicy) ShouldDropLeadingWS(ptree.SType) bool { return false }

// IsSatellite defaults to false.
func (BasePolicy) IsSatellite(ptree.SType) bool { return false }

// IsValueNode defaults to false.
func (BasePolicy) IsValueNode(ptree.SType) bool { return false }

// ShouldSplice defaults to false: keep every node unless a grammar has a
// specific scaffolding production to collapse.
func (BasePolicy) ShouldSplice(ptree.SType, *Node) bool { return false }

// IsLayerBreak defaults to false.
func (BasePolicy) IsLayerBreak(_, _ ptree.SType) bool { return false }

// CanBeFlattened defaults to false.
func (BasePolicy) CanBeFlattened(*Node, *Node, int) bool { return false }
