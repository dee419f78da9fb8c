// Package ptree defines the raw parse tree produced by a language
// front-end: every token the lexer saw, arranged into the front-end's
// native non-terminal hierarchy and tagged with language-specific
// structural types (STypes). A PTree is deliberately dumb — it knows
// nothing about splicing, layering or satellites; those are Tree-level
// concerns (package ztree) driven by a language Policy.
package ptree

import "github.com/zograscope/zograscope/internal/core/arena"

// SType is a language-specific structural tag attached to PNodes that carry
// structural meaning. It's an opaque small integer from the language
// policy's own enumeration; None (zero value) means "no structural tag",
// i.e. the node is scaffolding that STree reduction will drop.
type SType int

// None is the neutral SType shared by every language: a PNode tagged None
// carries no structural meaning of its own and is never an "SNode seed"
// (§4.2).
const None SType = 0

// Node is one node of a raw parse tree: either a positioned leaf token
// (Token >= 0, Line/Col > 0) or a non-terminal grouping positionless
// children.
type Node struct {
	// Token is the front-end's own lexical token id for leaves, or -1 for
	// non-terminals. Policy.MapToken translates it into a token.Type.
	Token int
	// From, Len locate the node's spelling in the original file contents,
	// in bytes. Zero/zero for synthetic non-terminals that have no direct
	// spelling of their own.
	From, Len int
	// Line, Col are the node's 1-based source position, or (0, 0) for a
	// non-terminal without a position of its own.
	Line, Col int
	// SType is the language-specific structural tag. None means this node
	// is pure scaffolding (a grammar production with no structural
	// identity, e.g. a "parenthesized expression wrapper" list that exists
	// only because the grammar needed somewhere to hang a rule).
	SType SType
	// Children is the ordered list of child nodes.
	Children []*Node

	// postponedFrom/postponedTo hold a (from, length) slice of a
	// postponed-token stream (§4.2.4 "Postponed tokens"). No front-end and
	// no ztree code sets or reads them: travelling comments and directives
	// are repositioned by source position in ztree.Transform instead.
	postponedFrom, postponedTo int
}

// PostponedSlice reports the (from, length) pair last stored by
// SetPostponed, or (0, 0) if it was never called.
func (n *Node) PostponedSlice() (from, length int) {
	return n.postponedFrom, n.postponedTo
}

// SetPostponed records a (from, length) postponed-stream slice for this
// node (§4.2.4). Nothing in the pipeline calls it.
func (n *Node) SetPostponed(from, length int) {
	n.postponedFrom, n.postponedTo = from, length
}

// IsLeaf reports whether the node carries a concrete source position.
func (n *Node) IsLeaf() bool {
	return n.Line != 0 && n.Col != 0
}

// LeftmostLeaf descends through first children until it finds a positioned
// leaf, or returns n itself if n has no children (making n its own
// leftmost "leaf" for line/col purposes even if it's positionless).
func (n *Node) LeftmostLeaf() *Node {
	cur := n
	for len(cur.Children) > 0 {
		if cur.IsLeaf() {
			return cur
		}
		cur = cur.Children[0]
	}
	return cur
}

// IsSeed reports whether a node is an "SNode seed" per §4.2: any PNode
// whose SType is not the neutral value.
func (n *Node) IsSeed() bool {
	return n.SType != None
}

// Tree is a complete parse tree plus the Pool that owns its nodes.
type Tree struct {
	Pool *arena.Pool[Node]
	Root *Node
	// Failed indicates the front-end could not produce a usable parse
	// (§7 ParseError / the "hasFailed" flag callers surface as a value).
	Failed bool
}

// New allocates an empty node from the tree's pool and returns it; callers
// fill in its fields and Children as the parser builds up the tree.
func (t *Tree) New() *Node {
	if t.Pool == nil {
		t.Pool = arena.NewPool[Node]()
	}
	return t.Pool.Make()
}
