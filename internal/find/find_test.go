package find

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/zograscope/zograscope/internal/lang/lua"
)

func TestFindLocatesFunctionsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte("function foo()\n  return 1\nend\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lua"), []byte("function bar()\n  return 2\nend\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("not lua"), 0o644))

	res, err := Find(Options{Paths: []string{dir}, Patterns: []string{"func"}})
	require.NoError(t, err)
	require.Len(t, res.Hits, 2)
}

func TestFindCountOnlySuppressesHits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte("function foo()\nend\n"), 0o644))

	res, err := Find(Options{Paths: []string{dir}, Patterns: []string{"func"}, CountOnly: true})
	require.NoError(t, err)
	require.Empty(t, res.Hits)
	require.Equal(t, 1, res.Chain.Matched())
}

func TestFindRejectsEmptyPatternList(t *testing.T) {
	_, err := Find(Options{Paths: []string{"."}})
	require.Error(t, err)
}
