package printer

import "github.com/zograscope/zograscope/internal/core/ztree"

// leaf is one positioned token gathered from a tree for printing: the
// node itself plus the line it belongs to, already resolved through any
// Next layering (§3.2) so the printer walks actual source tokens rather
// than the layer-break proxies that stand in for them at the outer
// level.
type leaf struct {
	node *ztree.Node
	line int
}

// collectLeaves walks n's subtree in source order, following Next into
// finer layers, and returns every genuine leaf (a node with no Children
// of its own and a real source position). Unlike ztree.NewLeafIterator,
// which stays on one layer, this is the printer's own full-depth walk: it
// must show the complete source text, not just the outermost layer's
// skeleton.
func collectLeaves(n *ztree.Node) []leaf {
	var out []leaf
	var walk func(*ztree.Node)
	walk = func(n *ztree.Node) {
		if n.Next != nil {
			walk(n.Next)
			return
		}
		if len(n.Children) == 0 {
			if n.Line > 0 {
				out = append(out, leaf{node: n, line: n.Line})
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
