// Package ztree implements the semantic tree (§3 "Tree"): the canonical,
// language-neutral structure that the comparator, the distiller and the
// printer all operate on. A Tree is built by materializing a structural
// tree (package stree) or, for --fine comparisons, a parse tree directly
// (package ptree), then run through a transform pass that applies a
// language Policy's splicing, layering, satellite-marking and value-node
// rules (§4.2).
package ztree

import (
	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
)

// State is the per-node result of a comparison (§3.1 "state"). A freshly
// materialized tree has every node Unchanged; comparison assigns the other
// three values, and printing/move-detection both read them back.
type State uint8

const (
	// Unchanged means the node (and by construction its whole subtree) has
	// an identical counterpart in the other tree.
	Unchanged State = iota
	// Deleted means the node exists only in the old tree.
	Deleted
	// Inserted means the node exists only in the new tree.
	Inserted
	// Updated means the node has a matched counterpart whose label differs,
	// or whose matched children don't cover all of either side's children.
	Updated
)

var stateNames = [...]string{"Unchanged", "Deleted", "Inserted", "Updated"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Node is one node of a semantic tree (§3.1).
type Node struct {
	// Label is the interned canonical text used for equality during
	// matching and coarse hashing: a leaf's own (tab-expanded,
	// whitespace-normalized) spelling, the concatenated leaf text of a
	// leaf SNode's subtree, or, for an internal node with a value child,
	// that child's Label.
	Label string
	// Spelling is the interned display text handed to the printer: tab
	// expanded, but never whitespace-normalized the way Label can be.
	Spelling string
	// Line, Col are the node's 1-based source position, or (0, 0) for a
	// node without one (a positionless non-terminal). A layer-break proxy
	// copies the position of the node it wraps.
	Line, Col int
	// Type is the token-level classification (§3.4) used for the
	// relabel-cost rule during TED and for syntax highlighting.
	Type token.Type
	// SType is the language-specific structural tag this node's value
	// carries, inherited from the PNode/SNode it was materialized from.
	SType ptree.SType
	// MType is the coarse semantic category (§3.4 MType) a language
	// Policy assigns via Classify; used by the distiller's thresholds and
	// by `find`/`stats`.
	MType token.MType
	// State is the comparison result; Unchanged until a comparison runs.
	State State
	// Satellite marks a node (typically punctuation or a separator) whose
	// state is not computed directly but inherited from its parent once
	// the parent's own state is known (§4.6).
	Satellite bool
	// Moved marks a matched, Unchanged node whose match partner sits under
	// a parent that isn't its own parent's match, or at a different index
	// among its siblings (§4.6 move detection).
	Moved bool
	// Last marks the innermost node of a materializePNode() chain hung off
	// a leaf SNode's Next pointer — the node that actually owns Children
	// built from raw, unspliced PNodes.
	Last bool
	// Leaf reports whether this node corresponds to a positioned source
	// token rather than a synthesized or purely structural grouping.
	Leaf bool
	// ValueChild indexes the child whose Label this node borrowed (e.g. an
	// identifier under a declaration), or -1 if this node has no value
	// child of its own.
	ValueChild int
	// Children is the ordered list of child nodes below this one, after
	// splicing.
	Children []*Node
	// Next chains to a finer-grained materialization of the same source
	// span: a leaf SNode's Next is the full, unspliced PNode subtree
	// underlying it (§3.2 "Layers").
	Next *Node
	// Relative points at this node's match in the other tree once a
	// comparison has run, or nil if unmatched.
	Relative *Node
	// Parent points back at the structural parent assigned during
	// transform (nil for the tree root).
	Parent *Node
}

// HasValue reports whether n borrowed its Label from one of its own
// children (as opposed to being a leaf with its own text, or having no
// label at all).
func (n *Node) HasValue() bool {
	return n.ValueChild >= 0
}

// Value returns the child Label was borrowed from, or "" if none.
func (n *Node) Value() string {
	if n.ValueChild < 0 || n.ValueChild >= len(n.Children) {
		return ""
	}
	return n.Children[n.ValueChild].Label
}

// IsTerminal reports whether n has no children of its own (a leaf, or an
// empty layer-break proxy whose content lives entirely under Next).
func (n *Node) IsTerminal() bool {
	return len(n.Children) == 0
}

// Tree pairs a semantic tree's root with the language that produced it.
// The comparator, distiller and printer take root *Node values directly,
// not a *Tree.
type Tree struct {
	Root *Node
	// Language names the front-end that produced this tree (e.g. "c",
	// "bash").
	Language string
}
