package ztree

import "github.com/zograscope/zograscope/internal/core/token"

// Compare runs the full comparison pipeline on two already-materialized,
// already-transformed trees (§4.3–§4.6): coarse reduction, Zhang–Shasha
// tree edit distance, change-distilling refinement, then state
// propagation and move detection. It mutates both trees in place (State,
// Relative, Moved) and returns nothing; callers read the result straight
// off left and right.
func Compare(policy Policy, left, right *Node) {
	ReduceCoarse(left, right)
	ted(policy, left, right)
	Distill(policy, left, right)
	Propagate(policy, left, right)
}

// ted runs Zhang–Shasha tree edit distance between left and right,
// skipping satellite nodes (already resolved by coarse reduction or
// flagged as policy-level punctuation) and committing matches as it goes
// (§4.4).
func ted(policy Policy, left, right *Node) {
	lpo := buildPostOrder(left)
	rpo := buildPostOrder(right)
	if lpo.len() == 0 || rpo.len() == 0 {
		return
	}

	t := &tedState{
		policy:   policy,
		l:        lpo.nodes,
		r:        rpo.nodes,
		lld:      leftmostLeafDescendants(lpo.nodes),
		rld:      leftmostLeafDescendants(rpo.nodes),
		treedist: newMatrix(len(lpo.nodes), len(rpo.nodes)),
	}

	for _, i := range keyroots(t.lld) {
		for _, j := range keyroots(t.rld) {
			t.computeForestDist(i, j)
		}
	}

	t.forestTraceback(len(t.l)-1, len(t.r)-1)
}

// leftmostLeafDescendants computes, for every index in a post-order
// sequence, the post-order index of its leftmost leaf descendant
// (standard Zhang–Shasha l() function), skipping satellite children.
func leftmostLeafDescendants(nodes []*Node) []int {
	index := make(map[*Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	lld := make([]int, len(nodes))
	for i, n := range nodes {
		cur := n
		for {
			next := firstNonSatellite(cur.Children)
			if next == nil {
				break
			}
			cur = next
		}
		if id, ok := index[cur]; ok {
			lld[i] = id
		} else {
			lld[i] = i
		}
	}
	return lld
}

func firstNonSatellite(children []*Node) *Node {
	for _, c := range children {
		if !c.Satellite {
			return c
		}
	}
	return nil
}

// keyroots returns the Zhang–Shasha keyroots of a post-order sequence
// given its lld table, in ascending order: for each distinct lld value,
// the highest post-order index that has it (the root, or any node whose
// left sibling has a different leftmost-leaf-descendant).
func keyroots(lld []int) []int {
	byLLD := make(map[int]int, len(lld))
	for i, l := range lld {
		byLLD[l] = i
	}
	keys := make([]int, 0, len(byLLD))
	for _, i := range byLLD {
		keys = append(keys, i)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

type matrix [][]int

func newMatrix(rows, cols int) matrix {
	m := make(matrix, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

const (
	opNone byte = iota
	opMatch
	opDeleteLeft
	opInsertRight
)

// tedState holds the two post-order sequences, their lld tables, and the
// treedist memo table shared across every keyroot pair's forestdist
// computation (§4.4).
type tedState struct {
	policy   Policy
	l, r     []*Node
	lld, rld []int
	treedist matrix
}

// forest bundles one keyroot pair's forestdist table together with the
// operation that produced each cell and the (il, jl) origin the table is
// offset from, so traceback can replay the decisions without recomputing
// which branch of the recurrence won.
type forest struct {
	dist   matrix
	op     [][]byte
	il, jl int
}

// at returns forestdist[x][y] for this forest's table, where x ranges
// [il-1, i] and y ranges [jl-1, j].
func (f *forest) at(x, y int) int { return f.dist[x-f.il+1][y-f.jl+1] }
func (f *forest) opAt(x, y int) byte {
	return f.op[x-f.il+1][y-f.jl+1]
}

// computeForestDist fills in the forestdist table for the keyroot pair
// (i, j) (standard Zhang–Shasha recurrence) and records full-subtree
// distances into t.treedist for reuse by ancestor keyroots and by
// traceback's recursive descent into matched subtrees.
func (t *tedState) computeForestDist(i, j int) *forest {
	il, jl := t.lld[i], t.rld[j]

	f := &forest{il: il, jl: jl}
	rows, cols := i-il+2, j-jl+2
	f.dist = newMatrix(rows, cols)
	f.op = make([][]byte, rows)
	for r := range f.op {
		f.op[r] = make([]byte, cols)
	}

	for x := il; x <= i; x++ {
		f.dist[x-il+1][0] = f.dist[x-il][0] + 1
		f.op[x-il+1][0] = opDeleteLeft
	}
	for y := jl; y <= j; y++ {
		f.dist[0][y-jl+1] = f.dist[0][y-jl] + 1
		f.op[0][y-jl+1] = opInsertRight
	}

	for x := il; x <= i; x++ {
		for y := jl; y <= j; y++ {
			del := f.dist[x-il][y-jl+1] + 1
			ins := f.dist[x-il+1][y-jl] + 1

			var sub int
			if t.lld[x] == il && t.rld[y] == jl {
				sub = f.dist[x-il][y-jl] + t.relabelCost(x, y)
			} else {
				lx, ry := t.lld[x], t.rld[y]
				sub = f.dist[lx-il][ry-jl] + t.treedist[x][y]
			}

			best, op := del, opDeleteLeft
			if ins < best {
				best, op = ins, opInsertRight
			}
			if sub < best {
				best, op = sub, opMatch
			}
			f.dist[x-il+1][y-jl+1] = best
			f.op[x-il+1][y-jl+1] = op

			if t.lld[x] == il && t.rld[y] == jl {
				t.treedist[x][y] = best
			}
		}
	}

	return f
}

// relabelCost is the §4.4 relabel-cost rule: 0 (free) when x and y are
// considered matching, 1 otherwise.
func (t *tedState) relabelCost(x, y int) int {
	if t.matches(x, y) {
		return 0
	}
	return 1
}

func (t *tedState) matches(xi, yi int) bool {
	x, y := t.l[xi], t.r[yi]

	if x.SType == y.SType && t.policy.AlwaysMatches(x.SType) {
		return true
	}
	if len(x.Children) > 0 || len(y.Children) > 0 {
		return x.SType == y.SType
	}
	if x.Label == y.Label && x.SType == y.SType {
		return true
	}
	if canForceLeafMatch(x, y) && parentsMatched(x, y) {
		return true
	}
	return false
}

// canForceLeafMatch reports whether two unrelated leaves may still be
// forced to match purely because of their token category: both leaves of
// the same canonical Type, excluding the categories where matching by
// type alone is meaningless (virtual markers, comments, identifiers,
// directives). Mirrors the reference's free function of the same name.
func canForceLeafMatch(x, y *Node) bool {
	if len(x.Children) > 0 || len(y.Children) > 0 {
		return false
	}
	return token.Interchangeable(x.Type, y.Type)
}

func parentsMatched(x, y *Node) bool {
	if x.Parent == nil || y.Parent == nil {
		return false
	}
	return x.Parent.Relative == y.Parent
}

// forestTraceback recomputes the forestdist table for the tree pair
// rooted at (i, j) and walks it backward from (i, j), committing a match,
// delete or insert decision on every node pair it visits. When it meets a
// match decided via the "else" branch of the recurrence (x and y matched
// as whole subtrees via their memoized treedist rather than as adjacent
// forest roots), it recurses into forestTraceback(x, y) to resolve their
// internal alignment before skipping past both consumed subtrees.
func (t *tedState) forestTraceback(i, j int) {
	f := t.computeForestDist(i, j)
	il, jl := f.il, f.jl

	x, y := i, j
	for x >= il || y >= jl {
		switch {
		case x < il:
			t.commitInsert(y)
			y--
		case y < jl:
			t.commitDelete(x)
			x--
		default:
			switch f.opAt(x, y) {
			case opDeleteLeft:
				t.commitDelete(x)
				x--
			case opInsertRight:
				t.commitInsert(y)
				y--
			default:
				if t.lld[x] == il && t.rld[y] == jl {
					t.commitMatch(x, y)
					x--
					y--
				} else {
					lx, ry := t.lld[x], t.rld[y]
					t.forestTraceback(x, y)
					x, y = lx-1, ry-1
				}
			}
		}
	}
}

func (t *tedState) commitMatch(xi, yi int) {
	x, y := t.l[xi], t.r[yi]
	if x.Relative != nil || y.Relative != nil {
		return
	}
	x.Relative = y
	y.Relative = x
	if x.Label == y.Label && x.SType == y.SType {
		x.State, y.State = Unchanged, Unchanged
	} else {
		x.State, y.State = Updated, Updated
	}
}

func (t *tedState) commitDelete(xi int) {
	x := t.l[xi]
	if x.Relative == nil {
		x.State = Deleted
	}
}

func (t *tedState) commitInsert(yi int) {
	y := t.r[yi]
	if y.Relative == nil {
		y.State = Inserted
	}
}
