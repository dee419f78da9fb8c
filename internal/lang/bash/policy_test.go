package bash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleScript(t *testing.T) {
	src := "if [ -z \"$1\" ]; then\n  echo hi\nfi\n"
	tr, err := Policy{}.Parse(src, "s.sh", 4, false)
	require.NoError(t, err)
	require.NotNil(t, tr.Root)
}

func TestClassifyFunctionDefinition(t *testing.T) {
	require.Equal(t, "Function", Policy{}.Classify(STFunctionDefinition).String())
}
