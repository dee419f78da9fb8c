package diff

import (
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/zograscope/zograscope/internal/lang/c"
)

func TestCompareUnchangedFile(t *testing.T) {
	src := "int main(void) {\n  return 0;\n}\n"
	res, err := Compare("a.c", "a.c", src, src, Options{})
	require.NoError(t, err)
	require.False(t, res.Left.Failed)
	require.False(t, res.Right.Failed)
	require.Equal(t, "c", res.Language)
	require.NotNil(t, res.Left.Tree.Relative)
	require.Equal(t, res.Right.Tree, res.Left.Tree.Relative)
}

func TestCompareUnknownLanguage(t *testing.T) {
	_, err := Compare("a.xyz", "a.xyz", "", "", Options{})
	require.Error(t, err)

	var unk *UnknownLanguageError
	require.ErrorAs(t, err, &unk)
}

func TestDetectGitInvocation(t *testing.T) {
	args := []string{"path", "old", "oldhex", "100644", "new", "newhex", "100644"}
	gi, ok := DetectGitInvocation(args)
	require.True(t, ok)
	require.False(t, gi.IdenticalBlobs())

	args9 := append(args, "ren-old", "ren-new")
	gi9, ok := DetectGitInvocation(args9)
	require.True(t, ok)
	require.True(t, gi9.HasRename)

	_, ok = DetectGitInvocation([]string{"too", "few"})
	require.False(t, ok)
}

func TestLineFallback(t *testing.T) {
	out, err := LineFallback("a.txt", "b.txt", "one\ntwo\n", "one\nthree\n")
	require.NoError(t, err)
	require.Contains(t, out, "-two")
	require.Contains(t, out, "+three")
}
