package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zograscope/zograscope/internal/core/ztree"
)

func leafNode(line, col int, text string) *ztree.Node {
	return &ztree.Node{Line: line, Col: col, Label: text, Spelling: text, Leaf: true, ValueChild: -1}
}

func TestAlignedUnchangedLine(t *testing.T) {
	l := leafNode(1, 1, "x")
	r := leafNode(1, 1, "x")
	l.Relative, r.Relative = r, l

	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, l, r, Options{}))
	require.Contains(t, buf.String(), "x")
	require.Contains(t, buf.String(), "|")
}

func TestAlignedInsertedLine(t *testing.T) {
	l := leafNode(1, 1, "x")
	l.Relative = l
	r1 := leafNode(1, 1, "x")
	r2 := leafNode(2, 1, "y")
	r2.State = ztree.Inserted
	l.Relative, r1.Relative = r1, l

	root := &ztree.Node{Children: []*ztree.Node{r1, r2}, ValueChild: -1}
	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, l, root, Options{}))
	out := buf.String()
	require.Contains(t, out, "{+y+}")
	require.Contains(t, out, ">")
}

func TestAlignedDeletedOnly(t *testing.T) {
	l := leafNode(1, 1, "gone")
	l.State = ztree.Deleted

	r := &ztree.Node{ValueChild: -1}
	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, l, r, Options{}))
	require.Contains(t, buf.String(), "{-gone-}")
	require.Contains(t, buf.String(), "<")
}

func TestAlignedFoldsLongUnchangedRun(t *testing.T) {
	var lefts, rights []*ztree.Node
	for i := 1; i <= foldThreshold+3; i++ {
		l := leafNode(i, 1, "same")
		r := leafNode(i, 1, "same")
		l.Relative, r.Relative = r, l
		lefts = append(lefts, l)
		rights = append(rights, r)
	}
	lroot := &ztree.Node{Children: lefts, ValueChild: -1}
	rroot := &ztree.Node{Children: rights, ValueChild: -1}

	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, lroot, rroot, Options{}))
	require.Contains(t, buf.String(), "folded")
}

func TestAlignedNoFoldDisabled(t *testing.T) {
	var lefts, rights []*ztree.Node
	for i := 1; i <= foldThreshold+3; i++ {
		l := leafNode(i, 1, "same")
		r := leafNode(i, 1, "same")
		l.Relative, r.Relative = r, l
		lefts = append(lefts, l)
		rights = append(rights, r)
	}
	lroot := &ztree.Node{Children: lefts, ValueChild: -1}
	rroot := &ztree.Node{Children: rights, ValueChild: -1}

	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, lroot, rroot, Options{NoFold: true}))
	require.False(t, strings.Contains(buf.String(), "folded"))
}

func TestAlignedBothNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Aligned(&buf, nil, nil, Options{}))
	require.Empty(t, buf.String())
}

func TestFoldMarker(t *testing.T) {
	require.Equal(t, "@@ folded 12 identical lines @@", foldMarker(12))
}
