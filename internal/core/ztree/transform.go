package ztree

// Transform finishes a freshly materialized tree: it wires Parent back
// pointers (materialize only builds the Children direction) and lifts
// travelling nodes — comments, and anything else a Policy flags via
// IsTravellingNode — into source order among their siblings (§4.2.4
// "Postponed tokens"). A front-end that can't place such a token at its
// natural grammar position during parsing hands it back out of order;
// Transform is where the pipeline puts it back.
func Transform(root *Node, policy Policy) {
	assignParents(root, nil)
	liftTravelling(root, policy)
}

func assignParents(n *Node, parent *Node) {
	n.Parent = parent
	for _, c := range n.Children {
		assignParents(c, n)
	}
	if n.Next != nil {
		assignParents(n.Next, parent)
	}
}

// liftTravelling recursively repositions each node's travelling children
// (per Policy.IsTravellingNode) among its fixed siblings by source
// position, leaving the relative order of fixed siblings untouched.
func liftTravelling(n *Node, policy Policy) {
	for _, c := range n.Children {
		liftTravelling(c, policy)
	}
	if n.Next != nil {
		liftTravelling(n.Next, policy)
	}
	if len(n.Children) < 2 {
		return
	}

	hasTravelling := false
	for _, c := range n.Children {
		if policy.IsTravellingNode(c) {
			hasTravelling = true
			break
		}
	}
	if !hasTravelling {
		return
	}

	n.Children = repositionTravelling(n.Children, policy)
}

// repositionTravelling stable-merges the travelling nodes of children back
// in among the fixed nodes, ordered by (Line, Col); a travelling node with
// no position (Line == 0) is left where it was relative to its nearest
// fixed predecessor.
func repositionTravelling(children []*Node, policy Policy) []*Node {
	result := make([]*Node, 0, len(children))
	var pending []*Node
	for _, c := range children {
		if policy.IsTravellingNode(c) {
			pending = append(pending, c)
			continue
		}
		i := 0
		for i < len(pending) && comesBefore(pending[i], c) {
			i++
		}
		result = append(result, pending[:i]...)
		pending = pending[i:]
		result = append(result, c)
	}
	return append(result, pending...)
}

func comesBefore(a, b *Node) bool {
	if a.Line == 0 {
		return true
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}
