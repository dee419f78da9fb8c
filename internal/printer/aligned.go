package printer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zograscope/zograscope/internal/core/ztree"
)

// Options configures one Aligned render.
type Options struct {
	// NoFold disables collapsing long unchanged runs (§4.7 "unless
	// disabled").
	NoFold bool
}

// row is one printed line of the two-column report: left/right are the
// source line numbers present on each side (0 meaning absent), used to
// look up that line's already-rendered text.
type row struct {
	left, right int
}

// Aligned renders a two-column, line-aligned diff of left and right
// (already run through ztree.Compare) to w (§4.7). Either side may be nil
// (one tree entirely missing), in which case only the present side is
// printed per §4.7's failure-mode note.
func Aligned(w io.Writer, left, right *ztree.Node, opts Options) error {
	if left == nil && right == nil {
		return nil
	}
	if left == nil {
		return printOneSided(w, right, "new")
	}
	if right == nil {
		return printOneSided(w, left, "old")
	}

	lLines, lByLine := groupByLine(collectLeaves(left))
	rLines, rByLine := groupByLine(collectLeaves(right))

	rows := alignRows(lLines, rLines, lByLine, rByLine)
	rows = maybeFold(rows, lByLine, rByLine, opts.NoFold)

	lWidth := digits(lastOr(lLines, 0))
	rWidth := digits(lastOr(rLines, 0))

	for _, rw := range rows {
		if rw.left == foldedRow {
			fmt.Fprintf(w, "%*s %s %*s  %s\n", lWidth, "", "@", rWidth, "", foldMarker(rw.right))
			continue
		}
		leftText := ""
		if rw.left != 0 {
			leftText = joinLeaves(lByLine[rw.left], "old")
		}
		rightText := ""
		if rw.right != 0 {
			rightText = joinLeaves(rByLine[rw.right], "new")
		}
		sep := rowSeparator(rw, lByLine, rByLine)

		leftNum := ""
		if rw.left != 0 {
			leftNum = fmt.Sprintf("%d", rw.left)
		}
		rightNum := ""
		if rw.right != 0 {
			rightNum = fmt.Sprintf("%d", rw.right)
		}
		fmt.Fprintf(w, "%*s %c %*s  %s\t%s\n", lWidth, leftNum, sep, rWidth, rightNum, leftText, rightText)
	}
	return nil
}

// foldedRow is a sentinel row.left value marking a folded-run placeholder;
// row.right holds the number of lines it replaces.
const foldedRow = -1

func printOneSided(w io.Writer, n *ztree.Node, side string) error {
	_, byLine := groupByLine(collectLeaves(n))
	lines := sortedKeys(byLine)
	for _, ln := range lines {
		fmt.Fprintf(w, "%d  %s\n", ln, joinLeaves(byLine[ln], side))
	}
	return nil
}

func groupByLine(lvs []leaf) ([]int, map[int][]leaf) {
	byLine := make(map[int][]leaf)
	for _, l := range lvs {
		byLine[l.line] = append(byLine[l.line], l)
	}
	return sortedKeys(byLine), byLine
}

func sortedKeys(m map[int][]leaf) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func lastOr(s []int, def int) int {
	if len(s) == 0 {
		return def
	}
	return s[len(s)-1]
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// alignRows computes the line-level alignment (§4.7): matched leaves
// anchor each side's lines together, unmatched lines float between
// anchors in source order.
func alignRows(lLines, rLines []int, lByLine, rByLine map[int][]leaf) []row {
	type anchor struct{ l, r int }
	var anchors []anchor
	seen := make(map[int]bool)
	lastR := 0
	for _, ln := range lLines {
		for _, lf := range lByLine[ln] {
			n := lf.node
			if n.Satellite || n.State != ztree.Unchanged || n.Moved || n.Relative == nil {
				continue
			}
			other := n.Relative
			if other.Line <= lastR || seen[ln] {
				continue
			}
			anchors = append(anchors, anchor{l: ln, r: other.Line})
			seen[ln] = true
			lastR = other.Line
			break
		}
	}

	var rows []row
	li, ri := 0, 0
	lIdx := func(target int) int {
		for i, v := range lLines {
			if v == target {
				return i
			}
		}
		return len(lLines)
	}
	rIdx := func(target int) int {
		for i, v := range rLines {
			if v == target {
				return i
			}
		}
		return len(rLines)
	}

	flushUnanchored := func(lUpto, rUpto int) {
		for li < lUpto || ri < rUpto {
			switch {
			case li < lUpto && ri < rUpto:
				rows = append(rows, row{left: lLines[li], right: rLines[ri]})
				li++
				ri++
			case li < lUpto:
				rows = append(rows, row{left: lLines[li], right: 0})
				li++
			default:
				rows = append(rows, row{left: 0, right: rLines[ri]})
				ri++
			}
		}
	}

	for _, a := range anchors {
		flushUnanchored(lIdx(a.l), rIdx(a.r))
		rows = append(rows, row{left: a.l, right: a.r})
		li, ri = lIdx(a.l)+1, rIdx(a.r)+1
	}
	flushUnanchored(len(lLines), len(rLines))
	return rows
}

// maybeFold collapses consecutive rows that are aligned pairs whose every
// leaf on both sides is Unchanged, once a run exceeds foldThreshold.
func maybeFold(rows []row, lByLine, rByLine map[int][]leaf, disabled bool) []row {
	if disabled {
		return rows
	}
	isPlainUnchanged := func(r row) bool {
		if r.left == 0 || r.right == 0 {
			return false
		}
		for _, l := range lByLine[r.left] {
			if l.node.State != ztree.Unchanged || l.node.Moved {
				return false
			}
		}
		for _, l := range rByLine[r.right] {
			if l.node.State != ztree.Unchanged || l.node.Moved {
				return false
			}
		}
		return true
	}

	var out []row
	i := 0
	for i < len(rows) {
		if !isPlainUnchanged(rows[i]) {
			out = append(out, rows[i])
			i++
			continue
		}
		j := i
		for j < len(rows) && isPlainUnchanged(rows[j]) {
			j++
		}
		run := j - i
		if run > foldThreshold {
			out = append(out, row{left: foldedRow, right: run})
		} else {
			out = append(out, rows[i:j]...)
		}
		i = j
	}
	return out
}

func rowSeparator(r row, lByLine, rByLine map[int][]leaf) byte {
	switch {
	case r.left == 0:
		return '>'
	case r.right == 0:
		return '<'
	}
	leftChanged := lineHasEdit(lByLine[r.left])
	rightChanged := lineHasEdit(rByLine[r.right])
	switch {
	case leftChanged && rightChanged:
		return '~'
	case leftChanged || rightChanged:
		return '!'
	default:
		return '|'
	}
}

func lineHasEdit(lvs []leaf) bool {
	for _, l := range lvs {
		if l.node.State != ztree.Unchanged || l.node.Moved {
			return true
		}
	}
	return false
}

// joinLeaves renders one physical line's leaves with §6.4's edit markers,
// side selecting "~" vs "#" for an Updated leaf.
func joinLeaves(lvs []leaf, side string) string {
	parts := make([]string, 0, len(lvs))
	for _, l := range lvs {
		parts = append(parts, markedText(l.node, side))
	}
	return strings.Join(parts, "")
}

func markedText(n *ztree.Node, side string) string {
	text := n.Spelling
	if text == "" {
		text = n.Label
	}
	switch {
	case n.Moved:
		return wrap(colorForState(":"), "{:"+text+":}")
	case n.State == ztree.Deleted:
		return wrap(colorForState("-"), "{-"+text+"-}")
	case n.State == ztree.Inserted:
		return wrap(colorForState("+"), "{+"+text+"+}")
	case n.State == ztree.Updated && side == "old":
		return wrap(colorForState("~"), "{~"+text+"~}")
	case n.State == ztree.Updated:
		return wrap(colorForState("#"), "{#"+text+"#}")
	default:
		return wrap(colorForType(n.Type), text)
	}
}
