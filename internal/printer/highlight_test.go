package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
)

func TestHighlightReconstructsSource(t *testing.T) {
	kw := leafNode(1, 1, "if")
	kw.Type = token.Keywords
	paren := leafNode(1, 4, "(")
	paren.Satellite = true
	ident := leafNode(1, 5, "x")
	ident.Type = token.Identifiers

	root := &ztree.Node{Children: []*ztree.Node{kw, paren, ident}, ValueChild: -1}

	var buf bytes.Buffer
	require.NoError(t, Highlight(&buf, root))
	require.Equal(t, "if (x\n", buf.String())
}

func TestHighlightColorWrapsWhenEnabled(t *testing.T) {
	SetColor(true)
	defer SetColor(false)

	n := leafNode(1, 1, "foo")
	n.Type = token.Identifiers
	root := &ztree.Node{Children: []*ztree.Node{n}, ValueChild: -1}

	var buf bytes.Buffer
	require.NoError(t, Highlight(&buf, root))
	require.Contains(t, buf.String(), ansiBlue)
	require.Contains(t, buf.String(), ansiReset)
}

func TestCollectLeavesFollowsNext(t *testing.T) {
	inner := leafNode(1, 1, "inner")
	outer := &ztree.Node{Next: inner, ValueChild: -1}
	root := &ztree.Node{Children: []*ztree.Node{outer}, ValueChild: -1}

	lvs := collectLeaves(root)
	require.Len(t, lvs, 1)
	require.Equal(t, "inner", lvs[0].node.Label)
}

func TestCollectLeavesIncludesSatellites(t *testing.T) {
	sat := leafNode(1, 1, ";")
	sat.Satellite = true
	root := &ztree.Node{Children: []*ztree.Node{sat}, ValueChild: -1}

	lvs := collectLeaves(root)
	require.Len(t, lvs, 1)
}
