package c

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleFunction(t *testing.T) {
	src := "int f(int a) {\n  return a + 1;\n}\n"
	tr, err := Policy{}.Parse(src, "f.c", 4, false)
	require.NoError(t, err)
	require.NotNil(t, tr.Root)
	require.False(t, tr.Failed)
}

func TestClassifyFunctionDefinition(t *testing.T) {
	p := Policy{}
	require.Equal(t, "Function", p.Classify(STFunctionDefinition).String())
	require.Equal(t, "Call", p.Classify(STCallExpression).String())
	require.Equal(t, "Block", p.Classify(STCompoundStatement).String())
}

func TestSatelliteCoversPunctuation(t *testing.T) {
	p := Policy{}
	require.True(t, p.IsSatellite(STSemicolon))
	require.True(t, p.IsSatellite(STLBrace))
	require.False(t, p.IsSatellite(STIdentifier))
}
