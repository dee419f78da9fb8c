// Package stree implements the first reduction of a parse tree (§4.2
// "PTree -> STree"): it drops PNodes that carry no structural tag by
// collapsing single-child chains, keeping only the nodes a language policy
// considers structurally meaningful ("SNode seeds").
package stree

import (
	"fmt"
	"io"
	"strings"

	"github.com/zograscope/zograscope/internal/core/arena"
	"github.com/zograscope/zograscope/internal/core/ptree"
)

// Node is one node of a structural tree. Its Value always points at the
// PNode that defines it — either a tagged seed, or (when none of a
// sub-chain's children could be resolved to a seed) the untagged PNode
// passed through unchanged so materialization still has something to walk.
type Node struct {
	Value    *ptree.Node
	Children []*Node
}

// Tree is a complete structural tree plus the pool owning its nodes.
type Tree struct {
	Pool *arena.Pool[Node]
	Root *Node
}

// Reduce builds an STree from a PTree. If no node in proot's chain of
// single-child ancestors carries a structural tag, the returned Tree wraps
// proot itself untagged — materialization treats that the same as any
// other untagged passthrough node.
func Reduce(proot *ptree.Node) *Tree {
	pool := arena.NewPool[Node]()

	seed := findSeed(proot)
	if seed == nil {
		n := pool.Make()
		n.Value = proot
		return &Tree{Pool: pool, Root: n}
	}

	return &Tree{Pool: pool, Root: makeNode(pool, seed)}
}

// findSeed descends through single-child non-seed chains to find the first
// PNode carrying a structural tag, or nil if none exists along this chain
// (either a true leaf with no tag, or a branching node with more than one
// child where no single path leads unambiguously to a seed).
func findSeed(node *ptree.Node) *ptree.Node {
	if node.IsSeed() {
		return node
	}
	if len(node.Children) == 1 {
		return findSeed(node.Children[0])
	}
	return nil
}

// makeNode builds the SNode rooted at pnode, which the caller has already
// established is a seed (IsSeed() or a passthrough root). Each child of
// pnode is resolved independently: if a seed is reachable from it via
// findSeed, that seed becomes the child's only representative (everything
// between pnode and the seed is scaffolding and is dropped); otherwise the
// child's raw PNode is kept as an untagged passthrough so the subtree isn't
// lost entirely.
func makeNode(pool *arena.Pool[Node], pnode *ptree.Node) *Node {
	n := pool.Make()
	n.Value = pnode

	hasSeedChild := false
	for _, child := range pnode.Children {
		if findSeed(child) != nil {
			hasSeedChild = true
			break
		}
	}
	if !hasSeedChild {
		// Leaf SNode: nothing below here resolves to further structure.
		return n
	}

	n.Children = make([]*Node, 0, len(pnode.Children))
	for _, child := range pnode.Children {
		if seed := findSeed(child); seed != nil {
			n.Children = append(n.Children, makeNode(pool, seed))
		} else {
			passthrough := pool.Make()
			passthrough.Value = child
			n.Children = append(n.Children, passthrough)
		}
	}
	return n
}

// Dump writes an indented ASCII tree of root to w (the `--dump-stree`
// debug view, §6.3), one level below ztree.Dump in the pipeline: it shows
// the structural tree exactly as Reduce produced it, before splicing,
// layering or satellite-marking ever runs. contents supplies each node's
// spelling (an SNode carries only a byte offset into the source, not its
// own text) and toString names its SType the same way a language
// Policy's ToString would.
func Dump(w io.Writer, root *Node, contents string, toString func(ptree.SType) string) {
	dumpNode(w, root, contents, toString, nil)
}

func dumpNode(w io.Writer, n *Node, contents string, toString func(ptree.SType) string, trace []bool) {
	var b strings.Builder
	if len(trace) == 0 {
		b.WriteString("--- ")
	} else {
		b.WriteString("    ")
	}
	for i, isLast := range trace {
		innermost := i == len(trace)-1
		switch {
		case isLast && innermost:
			b.WriteString("`-- ")
		case isLast:
			b.WriteString("    ")
		case innermost:
			b.WriteString("|-- ")
		default:
			b.WriteString("|   ")
		}
	}

	v := n.Value
	spelling := ""
	if v.Len > 0 && v.From+v.Len <= len(contents) {
		spelling = contents[v.From : v.From+v.Len]
	}
	spelling = strings.ReplaceAll(spelling, "\n", "\\n")
	if len(spelling) > 40 {
		spelling = spelling[:37] + "..."
	}
	fmt.Fprintf(w, "%s%s %q\n", b.String(), toString(v.SType), spelling)

	trace = append(trace, false)
	for i, c := range n.Children {
		trace[len(trace)-1] = i == len(n.Children)-1
		dumpNode(w, c, contents, toString, trace)
	}
}
