package ztree

import (
	"sort"

	"github.com/zograscope/zograscope/internal/core/token"
)

// nonFunctionThreshold and functionThreshold are the §4.5 similarity
// cutoffs below which a candidate pair is not proposed as a match at all.
// Function bodies are paired more liberally since their leaf sets are
// typically large and a partial rewrite still leaves most of a function
// recognizable as "the same function, changed", whereas two small,
// unrelated declarations with 40% leaf overlap are usually just unrelated.
const (
	nonFunctionThreshold = 0.6
	functionThreshold    = 0.4
)

// Distill refines TED's necessarily coarse tree-level matching by pairing
// still-unmatched internal nodes on leaf overlap and label similarity
// (§4.5), restarting a scoped TED pass on each newly matched pair, and
// finally promoting any leaf left unmatched but sitting next to a matched
// sibling with an identical label and type.
func Distill(policy Policy, left, right *Node) {
	groups := groupCandidates(policy, left, right)
	for _, g := range groups {
		distillGroup(policy, g)
	}
	promoteMovedLeaves(policy, left, right)
}

// candidateGroup is the set of still-unmatched internal nodes on each side
// that share an MType (and, for Functions, are both classified Function).
type candidateGroup struct {
	mtypeKey int
	left     []*Node
	right    []*Node
}

func groupCandidates(policy Policy, left, right *Node) []*candidateGroup {
	byMType := map[int]*candidateGroup{}
	collect := func(n *Node, side int) {
		var walk func(*Node)
		walk = func(n *Node) {
			if n.Relative == nil && len(n.Children) > 0 {
				g, ok := byMType[int(n.MType)]
				if !ok {
					g = &candidateGroup{mtypeKey: int(n.MType)}
					byMType[int(n.MType)] = g
				}
				if side == 0 {
					g.left = append(g.left, n)
				} else {
					g.right = append(g.right, n)
				}
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(n)
	}
	collect(left, 0)
	collect(right, 1)

	groups := make([]*candidateGroup, 0, len(byMType))
	for _, g := range byMType {
		if len(g.left) > 0 && len(g.right) > 0 {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].mtypeKey < groups[j].mtypeKey })
	return groups
}

type candidatePair struct {
	x, y       *Node
	similarity float64
}

// distillGroup greedily pairs a candidate group's nodes in descending
// similarity order, above the group's threshold, then restarts TED scoped
// to each newly matched pair's subtrees.
func distillGroup(policy Policy, g *candidateGroup) {
	threshold := nonFunctionThreshold
	if g.mtypeKey == int(token.Function) {
		threshold = functionThreshold
	}

	var pairs []candidatePair
	for _, x := range g.left {
		for _, y := range g.right {
			sim := combinedSimilarity(x, y)
			if sim >= threshold {
				pairs = append(pairs, candidatePair{x: x, y: y, similarity: sim})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].similarity > pairs[j].similarity })

	matchedLeft := map[*Node]bool{}
	matchedRight := map[*Node]bool{}
	for _, p := range pairs {
		if matchedLeft[p.x] || matchedRight[p.y] {
			continue
		}
		if p.x.Relative != nil || p.y.Relative != nil {
			continue
		}
		matchedLeft[p.x] = true
		matchedRight[p.y] = true
		p.x.Relative = p.y
		p.y.Relative = p.x
		if p.x.Label == p.y.Label {
			p.x.State, p.y.State = Unchanged, Unchanged
		} else {
			p.x.State, p.y.State = Updated, Updated
		}
		ted(policy, p.x, p.y)
	}
}

// combinedSimilarity is §4.5's 0.6*leafSim + 0.4*labelSim.
func combinedSimilarity(x, y *Node) float64 {
	return 0.6*leafSimilarity(x, y) + 0.4*labelSimilarity(x, y)
}

// leafSimilarity is the fraction of leaves (by count, relative to the
// larger side) that have an exact label+type counterpart on the other
// side. It's a multiset comparison, not a matching one: repeated leaves
// (e.g. several "i" identifiers) are allowed to pair more than once,
// which is fine since this is only a similarity score, not a real match.
func leafSimilarity(x, y *Node) float64 {
	xl := leaves(x)
	yl := leaves(y)
	if len(xl) == 0 || len(yl) == 0 {
		return 0
	}

	yCount := map[string]int{}
	for _, n := range yl {
		yCount[leafKey(n)]++
	}

	matched := 0
	for _, n := range xl {
		k := leafKey(n)
		if yCount[k] > 0 {
			yCount[k]--
			matched++
		}
	}

	denom := len(xl)
	if len(yl) > denom {
		denom = len(yl)
	}
	return float64(matched) / float64(denom)
}

func leafKey(n *Node) string {
	return n.Label + "\x00" + n.Type.String()
}

// labelSimilarity is the Dice coefficient over character trigrams of two
// nodes' own (value-borrowed) labels, used only when both have a nonempty
// Label of their own.
func labelSimilarity(x, y *Node) float64 {
	if x.Label == "" || y.Label == "" {
		return 0
	}
	if x.Label == y.Label {
		return 1
	}
	a := trigrams(x.Label)
	b := trigrams(y.Label)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	bCount := map[string]int{}
	for _, t := range b {
		bCount[t]++
	}
	common := 0
	for _, t := range a {
		if bCount[t] > 0 {
			bCount[t]--
			common++
		}
	}
	return 2 * float64(common) / float64(len(a)+len(b))
}

func trigrams(s string) []string {
	if len(s) < 3 {
		return []string{s}
	}
	out := make([]string, 0, len(s)-2)
	for i := 0; i+3 <= len(s); i++ {
		out = append(out, s[i:i+3])
	}
	return out
}

// promoteMovedLeaves implements §4.5 step 4: a leaf still unmatched after
// TED and distillation, with a matched sibling peer of identical label
// and type under the same matched parent, is promoted to Unchanged and
// flagged Moved if its position among its parent's children differs from
// its peer's position among that peer's relative's children.
func promoteMovedLeaves(policy Policy, left, right *Node) {
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Relative != nil && len(n.Children) > 0 {
			promoteSiblingGroup(n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(left)
}

func promoteSiblingGroup(parent *Node) {
	other := parent.Relative
	for i, c := range parent.Children {
		if c.Relative != nil || len(c.Children) > 0 {
			continue
		}
		for j, oc := range other.Children {
			if oc.Relative != nil {
				continue
			}
			if oc.Label == c.Label && oc.Type == c.Type {
				c.Relative = oc
				oc.Relative = c
				c.State, oc.State = Unchanged, Unchanged
				if i != j {
					c.Moved, oc.Moved = true, true
				}
				break
			}
		}
	}
}
