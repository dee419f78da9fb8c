package ztree

// Propagate finishes a comparison (§4.6): it marks every node definitively
// Unchanged, Updated, Deleted or Inserted, lets satellites inherit their
// parent's state, flags genuinely moved nodes, and propagates state across
// a node's Next layer only when the outer node changed, so that editing a
// for-loop's header doesn't falsely colour its untouched body.
func Propagate(policy Policy, left, right *Node) {
	propagateTree(policy, left)
	propagateTree(policy, right)
	markMoved(left)
}

// propagateTree finalizes State bottom-up: a matched node's State was
// already set by TED/distill (Unchanged or Updated) or is Deleted/
// Inserted for an unmatched one. This pass only needs to push that result
// down onto satellites and across layer boundaries, since TED never
// visits satellite nodes directly.
func propagateTree(policy Policy, n *Node) {
	for _, c := range n.Children {
		propagateTree(policy, c)
	}

	if n.Satellite {
		if n.Parent != nil {
			n.State = n.Parent.State
		}
	}

	if n.Next != nil {
		if n.State != Unchanged {
			propagateLayerState(n, n.Next)
		}
		propagateTree(policy, n.Next)
	}
}

// propagateLayerState pushes an outer node's changed state down onto the
// top node of the layer it wraps, unless that inner node already has a
// Relative of its own (coarse reduction's matchSubtree is the only pass
// that descends into Next and sets one). Only that one inner node is
// updated; its descendants keep their own State.
func propagateLayerState(outer, inner *Node) {
	if inner.Relative != nil {
		return
	}
	inner.State = outer.State
}

// markMoved walks the left tree and flags Moved on every matched,
// Unchanged, non-satellite node whose partner either sits under a parent
// that isn't its own parent's match, or sits at a different index among
// its parent's non-satellite children. Positions are compared among direct
// siblings only, not as post-order indices relative to the nearest matched
// ancestor, and nodes of the right tree are never flagged here.
func markMoved(root *Node) {
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Relative != nil && n.State == Unchanged && !n.Satellite {
			checkMoved(n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func checkMoved(n *Node) {
	other := n.Relative
	if n.Parent == nil || other.Parent == nil {
		return
	}
	if n.Parent.Relative != other.Parent {
		n.Moved = true
		return
	}

	myIdx := indexAmongNonSatelliteSiblings(n)
	otherIdx := indexAmongNonSatelliteSiblings(other)
	if myIdx != otherIdx {
		n.Moved = true
	}
}

func indexAmongNonSatelliteSiblings(n *Node) int {
	if n.Parent == nil {
		return 0
	}
	idx := 0
	for _, c := range n.Parent.Children {
		if c.Satellite {
			continue
		}
		if c == n {
			return idx
		}
		idx++
	}
	return idx
}
