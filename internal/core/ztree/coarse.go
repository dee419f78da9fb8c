package ztree

// ReduceCoarse performs the coarse reduction pass (§4.3): before running
// full tree edit distance, pair up top-level children of left and right
// whose entire subtrees hash identically, mark both sides of each pair
// Unchanged and matched, and flag them satellite so TED's post-order walk
// skips re-comparing content it already knows is identical. This turns an
// O(n*m) full TED into something close to O(k) for the common case of a
// diff touching a handful of children in an otherwise-untouched file.
func ReduceCoarse(left, right *Node) {
	leftHashes := hashChildren(left)
	rightHashes := hashChildren(right)

	used := make([]bool, len(right.Children))
	for i, h1 := range leftHashes {
		for j, h2 := range rightHashes {
			if used[j] || right.Children[j].Satellite {
				continue
			}
			if h1 == h2 {
				matchSubtree(left.Children[i], right.Children[j])
				left.Children[i].Satellite = true
				right.Children[j].Satellite = true
				used[j] = true
				break
			}
		}
	}
}

// matchSubtree marks x and y (assumed structurally identical, per the
// matching hash) and every corresponding pair of descendants Unchanged and
// mutually Relative, recursing down Children and, for a leaf SNode's
// Next-chained fine structure, down Next as long as neither side is the
// Last (innermost, already-fully-expanded) node of that chain.
func matchSubtree(x, y *Node) {
	x.State = Unchanged
	y.State = Unchanged
	x.Relative = y
	y.Relative = x

	n := len(x.Children)
	if len(y.Children) < n {
		n = len(y.Children)
	}
	for i := 0; i < n; i++ {
		matchSubtree(x.Children[i], y.Children[i])
	}

	if x.Next != nil && !x.Next.Last && y.Next != nil && !y.Next.Last {
		matchSubtree(x.Next, y.Next)
	}
}

// hashChildren hashes each direct child of node individually, in order.
func hashChildren(node *Node) []uint64 {
	hashes := make([]uint64, len(node.Children))
	for i, c := range node.Children {
		hashes[i] = hashNode(c)
	}
	return hashes
}

// hashNode hashes a node's entire subtree: its Next chain if it has one
// (the finer structure is what actually carries content for a leaf SNode),
// otherwise its own label combined with every child's hash in order.
func hashNode(node *Node) uint64 {
	if node.Next != nil {
		return hashNode(node.Next)
	}

	h := fnv1a(node.Label)
	for _, c := range node.Children {
		h = combineHash(h, hashNode(c))
	}
	return h
}

// fnv1a hashes a string with the 64-bit FNV-1a algorithm.
func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// combineHash folds a second hash into an accumulator the same way
// boost::hash_combine does: not bit-for-bit identical to boost's mix, but
// sharing its shape (golden-ratio constant, shift-based avalanche).
func combineHash(seed, v uint64) uint64 {
	const magic = 0x9e3779b97f4a7c15
	seed ^= v + magic + (seed << 6) + (seed >> 2)
	return seed
}
