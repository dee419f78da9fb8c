package ztree

import (
	"strings"

	"github.com/zograscope/zograscope/internal/core/arena"
	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/stree"
	"github.com/zograscope/zograscope/internal/core/token"
)

// materializer holds the state threaded through one materialization pass:
// the pool nodes are allocated from, the arena labels and spellings are
// interned into, the original file contents (for re-slicing leaf spans)
// and the tab width used to expand tabs while stringifying.
type materializer struct {
	pool     *arena.Pool[Node]
	a        *arena.Arena
	policy   Policy
	contents string
	tabWidth int
}

// Materialize builds a Tree from an STree (§4.2 "STree -> Tree"). pool and
// a are typically fresh for each call; contents must be the exact file
// text the STree's underlying PTree was parsed from.
func Materialize(policy Policy, contents string, stRoot *stree.Node, pool *arena.Pool[Node], a *arena.Arena, tabWidth int) *Node {
	m := &materializer{pool: pool, a: a, policy: policy, contents: contents, tabWidth: tabWidth}
	return m.materializeSNode(stRoot, ptree.None)
}

// MaterializeFine builds a Tree directly from a PTree, bypassing STree
// reduction entirely (the --fine comparison mode, where every token —
// including scaffolding an STree would normally drop — participates in
// comparison).
func MaterializeFine(policy Policy, contents string, pRoot *ptree.Node, pool *arena.Pool[Node], a *arena.Arena, tabWidth int) *Node {
	m := &materializer{pool: pool, a: a, policy: policy, contents: contents, tabWidth: tabWidth}
	return m.materializePNode(pRoot)
}

func (m *materializer) newNode() *Node {
	n := m.pool.Make()
	n.ValueChild = -1
	return n
}

// materializeSNode turns one SNode into a Node, recursively materializing
// its children, applying splicing, value-node detection and layer-break
// wrapping along the way (mirrors the reference's materializeSNode).
func (m *materializer) materializeSNode(s *stree.Node, parent ptree.SType) *Node {
	n := m.newNode()
	n.SType = s.Value.SType
	n.MType = m.policy.Classify(n.SType)
	n.Satellite = m.policy.IsSatellite(n.SType)

	if len(s.Children) == 0 {
		leftmost := s.Value.LeftmostLeaf()
		n.Label = m.a.Intern(m.subtreeLabel(s.Value))
		n.Line, n.Col = leftmost.Line, leftmost.Col
		n.Leaf = n.Line != 0 && n.Col != 0

		inner := m.materializePNode(s.Value)
		inner.Last = true
		n.Next = inner
		n.Type = inner.Type
		return n
	}

	type childPair struct {
		stype ptree.SType
		node  *Node
	}
	pairs := make([]childPair, 0, len(s.Children))
	for _, c := range s.Children {
		child := m.materializeSNode(c, n.SType)
		pairs = append(pairs, childPair{stype: c.Value.SType, node: child})
		putChild(n, child, m.policy)
	}

	if len(n.Children) > 0 {
		n.Line, n.Col = n.Children[0].Line, n.Children[0].Col
	}

	for _, p := range pairs {
		if !m.policy.IsValueNode(p.stype) {
			continue
		}
		n.Label = p.node.Label
		for i, c := range n.Children {
			if c == p.node {
				n.ValueChild = i
				break
			}
		}
		break
	}

	if m.policy.IsLayerBreak(parent, n.SType) {
		outer := m.newNode()
		outer.SType = n.SType
		outer.MType = n.MType
		outer.Line, outer.Col = n.Line, n.Col
		outer.Next = n
		if n.Label != "" {
			outer.Label = n.Label
		} else {
			outer.Label = m.a.Intern(printSubTree(n, false))
		}
		return outer
	}

	return n
}

// putChild appends child to parent's Children, splicing child's own
// children in its place when the policy says child carries no structural
// identity of its own (mirrors the reference's putNodeChild).
func putChild(parent *Node, child *Node, policy Policy) {
	if !policy.ShouldSplice(parent.SType, child) {
		parent.Children = append(parent.Children, child)
		return
	}

	target := child
	if child.Next != nil {
		if child.Next.Last {
			if len(child.Next.Children) != 0 || child.Next.Label != "" {
				parent.Children = append(parent.Children, child)
			}
			return
		}
		target = child.Next
	}

	for _, gc := range target.Children {
		putChild(parent, gc, policy)
	}
}

// materializePNode builds a full, unspliced Node tree straight from a
// PNode, preserving every token. It backs the Next chain of leaf SNodes
// and the whole of --fine mode.
func (m *materializer) materializePNode(p *ptree.Node) *Node {
	typ := m.policy.MapToken(p.Token)
	if typ == token.Virtual && len(p.Children) == 1 {
		return m.materializePNode(p.Children[0])
	}

	n := m.newNode()
	n.Label = m.a.Intern(m.subtreeLabel(p))
	if m.policy.ShouldDropLeadingWS(p.SType) && p.IsLeaf() {
		n.Spelling = m.a.Intern(leafText(m.contents, p, m.tabWidth, false))
	} else {
		n.Spelling = n.Label
	}
	n.Line, n.Col = p.Line, p.Col
	n.Type = typ
	n.SType = p.SType
	n.MType = m.policy.Classify(p.SType)
	n.Leaf = p.IsLeaf()

	if len(p.Children) > 0 {
		n.Children = make([]*Node, 0, len(p.Children))
		for _, c := range p.Children {
			n.Children = append(n.Children, m.materializePNode(c))
		}
	}
	return n
}

// subtreeLabel computes the comparison text for a PNode subtree: a leaf's
// own (possibly whitespace-normalized) spelling, or the concatenation of
// its descendants' leaf spellings in source order for an internal node.
// This is the Go equivalent of the reference's single shared-buffer
// stringification pass; here each node's text is built exactly once,
// bottom-up, rather than sliced out of one growing buffer.
func (m *materializer) subtreeLabel(p *ptree.Node) string {
	if p.IsLeaf() {
		return leafText(m.contents, p, m.tabWidth, m.policy.ShouldDropLeadingWS(p.SType))
	}
	if len(p.Children) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range p.Children {
		b.WriteString(m.subtreeLabel(c))
	}
	return b.String()
}

// leafText renders the [from, from+len) byte span of a positioned PNode,
// expanding tabs to tabWidth-aligned spaces and, if dropLeadingWS is set,
// eliding whitespace that immediately follows an embedded newline (the
// reference's stringifyPNode vs. stringifyPNode-for-spelling distinction).
func leafText(contents string, p *ptree.Node, tabWidth int, dropLeadingWS bool) string {
	col := p.Col
	var b strings.Builder
	leadingWS := false
	end := p.From + p.Len
	for i := p.From; i < end && i < len(contents); i++ {
		c := contents[i]
		switch c {
		case '\n':
			col = 1
			b.WriteByte('\n')
			leadingWS = dropLeadingWS
		case '\t':
			width := tabWidth - (col-1)%tabWidth
			col += width
			if !leadingWS {
				for j := 0; j < width; j++ {
					b.WriteByte(' ')
				}
			}
		case ' ':
			col++
			if !leadingWS {
				b.WriteByte(' ')
			}
		default:
			col++
			b.WriteByte(c)
			leadingWS = false
		}
	}
	return b.String()
}

// printSubTree reconstructs the source text of a subtree by walking down
// each node's Next chain to the finest materialization available and
// concatenating leaf labels in order (mirrors the reference's
// printSubTree, used here as the layer-break proxy's fallback label when
// the inner node has no value-borrowed Label of its own).
func printSubTree(n *Node, withComments bool) string {
	var b strings.Builder
	var run func(*Node)
	run = func(node *Node) {
		if node.Next != nil {
			run(node.Next)
			return
		}
		if node.Leaf && (node.Type != token.Comments || withComments) {
			b.WriteString(node.Label)
		}
		for _, c := range node.Children {
			run(c)
		}
	}
	run(n)
	return b.String()
}
