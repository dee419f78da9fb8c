package find

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
)

func node(mtype token.MType, label string, children ...*ztree.Node) *ztree.Node {
	return &ztree.Node{MType: mtype, Label: label, Children: children, ValueChild: -1}
}

func TestNewChainSingle(t *testing.T) {
	m, err := NewChain([]string{"func"})
	require.NoError(t, err)
	require.Equal(t, token.Function, m.MType())
	require.Nil(t, m.Nested())
}

func TestNewChainNested(t *testing.T) {
	m, err := NewChain([]string{"func", "call"})
	require.NoError(t, err)
	require.Equal(t, token.Function, m.MType())
	require.NotNil(t, m.Nested())
	require.Equal(t, token.Call, m.Nested().MType())
}

func TestNewChainEmpty(t *testing.T) {
	_, err := NewChain(nil)
	require.Error(t, err)
}

func TestNewChainUnknownType(t *testing.T) {
	_, err := NewChain([]string{"bogus"})
	require.Error(t, err)
	var ume *UnknownMatcherError
	require.ErrorAs(t, err, &ume)
}

func TestMatchFindsNestedCallInFunction(t *testing.T) {
	call := node(token.Call, "memcpy")
	other := node(token.Call, "strlen")
	fn := node(token.Function, "main", call, other)
	root := node(token.Other, "root", fn)

	chain, err := NewChain([]string{"func", "call:memcpy"})
	require.NoError(t, err)

	var hits []string
	found := chain.Match(root, func(n *ztree.Node) { hits = append(hits, n.Label) })

	require.True(t, found)
	require.Equal(t, []string{"memcpy"}, hits)
	require.Equal(t, 1, chain.Seen())
	require.Equal(t, 1, chain.Matched())
}

func TestMatchCountsSeenEvenWhenNestedFails(t *testing.T) {
	call := node(token.Call, "strlen")
	fn := node(token.Function, "main", call)
	root := node(token.Other, "root", fn)

	chain, err := NewChain([]string{"func", "call:memcpy"})
	require.NoError(t, err)

	found := chain.Match(root, func(*ztree.Node) {})
	require.False(t, found)
	require.Equal(t, 1, chain.Seen())
	require.Equal(t, 0, chain.Matched())
}

func TestMatchNoNestedInvokesHandlerDirectly(t *testing.T) {
	fn1 := node(token.Function, "a")
	fn2 := node(token.Function, "b")
	root := node(token.Other, "root", fn1, fn2)

	chain, err := NewChain([]string{"func"})
	require.NoError(t, err)

	var hits []string
	chain.Match(root, func(n *ztree.Node) { hits = append(hits, n.Label) })
	require.Equal(t, []string{"a", "b"}, hits)
}
