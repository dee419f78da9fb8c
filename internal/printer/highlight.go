package printer

import (
	"fmt"
	"io"
	"sort"

	"github.com/zograscope/zograscope/internal/core/ztree"
)

// Highlight writes root's subtree to w as its original source text with
// ANSI decoration keyed by each leaf's token.Type (§6.3 `hi`), reusing
// color.go's color-decision plumbing rather than a separate palette.
func Highlight(w io.Writer, root *ztree.Node) error {
	lvs := collectLeaves(root)
	sort.SliceStable(lvs, func(i, j int) bool {
		if lvs[i].node.Line != lvs[j].node.Line {
			return lvs[i].node.Line < lvs[j].node.Line
		}
		return lvs[i].node.Col < lvs[j].node.Col
	})

	line, col := 1, 1
	for _, l := range lvs {
		n := l.node
		for line < n.Line {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			line++
			col = 1
		}
		for col < n.Col {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
			col++
		}
		text := n.Spelling
		if text == "" {
			text = n.Label
		}
		if _, err := fmt.Fprint(w, wrap(colorForType(n.Type), text)); err != nil {
			return err
		}
		col += len([]rune(text))
	}
	_, err := fmt.Fprintln(w)
	return err
}
