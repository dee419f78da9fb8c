package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// LineFallback runs a plain unified line diff between two file versions,
// for use when a front-end reports a parse failure (§7) — diff degrades
// from syntax-aware comparison to the shape of Analyzer's fallback
// package's byte-compare fallback, generalized to a real line diff rather
// than a yes/no "are these byte-identical" answer.
func LineFallback(leftPath, rightPath, leftContents, rightContents string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(leftContents),
		B:        difflib.SplitLines(rightContents),
		FromFile: leftPath,
		ToFile:   rightPath,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
