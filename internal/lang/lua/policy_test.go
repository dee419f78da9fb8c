package lua

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleChunk(t *testing.T) {
	src := "local function add(a, b)\n  return a + b\nend\n"
	tr, err := Policy{}.Parse(src, "s.lua", 4, false)
	require.NoError(t, err)
	require.NotNil(t, tr.Root)
}

func TestClassifyFunctionDeclaration(t *testing.T) {
	require.Equal(t, "Function", Policy{}.Classify(STFunctionDeclaration).String())
}

func TestSatelliteCoversPunctuation(t *testing.T) {
	require.True(t, Policy{}.IsSatellite(STComma))
	require.False(t, Policy{}.IsSatellite(STIdentifier))
}
