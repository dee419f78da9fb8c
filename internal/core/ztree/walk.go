package ztree

// poID is stored out-of-band from Node (rather than as a Node field)
// because it's only meaningful for the lifetime of one TED run, and two
// concurrent comparisons must never see each other's numbering.
type postOrder struct {
	nodes []*Node
	poID  map[*Node]int
}

// buildPostOrder computes the post-order sequence of root, skipping
// satellite nodes (§4.6): a node flagged Satellite never gets its own
// poID or slot in the sequence, since its state is derived from its
// parent rather than compared directly. Mirrors the reference's
// postOrder/poID bookkeeping, used by both TED and the distiller.
func buildPostOrder(root *Node) *postOrder {
	po := &postOrder{poID: make(map[*Node]int)}
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Satellite {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
		po.poID[n] = len(po.nodes)
		po.nodes = append(po.nodes, n)
	}
	walk(root)
	return po
}

func (po *postOrder) id(n *Node) int {
	return po.poID[n]
}

func (po *postOrder) len() int {
	return len(po.nodes)
}

// leaves returns every Node in root's subtree with no children, in
// left-to-right order, skipping satellites and not following Next; the
// distiller's leaf-similarity score uses it.
func leaves(root *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Satellite {
			return
		}
		if len(n.Children) == 0 {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// LeafIterator is a restartable, explicit-stack walk over a subtree's
// leaves, standing in for the reference's coroutine-based leaf iterator
// (§9 "Coroutine-like lazy iterators"): Go has no stackful coroutines, so
// rather than materialize every leaf up front this keeps its own explicit
// stack and produces one leaf per Next call, which is what the original
// iterator's callers actually needed.
type LeafIterator struct {
	stack []*Node
}

// NewLeafIterator starts a leaf walk rooted at n.
func NewLeafIterator(n *Node) *LeafIterator {
	return &LeafIterator{stack: []*Node{n}}
}

// Next returns the next leaf in the walk, or nil when exhausted.
func (it *LeafIterator) Next() *Node {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if n.Satellite {
			continue
		}
		if len(n.Children) == 0 {
			return n
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			it.stack = append(it.stack, n.Children[i])
		}
	}
	return nil
}
