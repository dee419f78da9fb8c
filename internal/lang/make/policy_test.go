package make

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleRule(t *testing.T) {
	src := "CFLAGS := -Wall\n\nall: main.o\n\tgcc -o all main.o\n"
	tr, err := Parse(src, "Makefile", 8, false)
	require.NoError(t, err)
	require.NotNil(t, tr.Root)
	require.Equal(t, STMakefile, tr.Root.SType)
	require.Len(t, tr.Root.Children, 1)

	stmts := tr.Root.Children[0]
	require.Equal(t, STStatements, stmts.SType)
	require.Len(t, stmts.Children, 2)
	require.Equal(t, STAssignmentExpr, stmts.Children[0].SType)
	require.Equal(t, STRule, stmts.Children[1].SType)
}

func TestParseIfdefElse(t *testing.T) {
	src := "ifdef DEBUG\nCFLAGS := -g\nelse\nCFLAGS := -O2\nendif\n"
	tr, err := Parse(src, "Makefile", 8, false)
	require.NoError(t, err)

	stmts := tr.Root.Children[0]
	require.Len(t, stmts.Children, 1)
	ifNode := stmts.Children[0]
	require.Equal(t, STIfStmt, ifNode.SType)

	var hasElse bool
	for _, c := range ifNode.Children {
		if c.SType == STElseClause {
			hasElse = true
		}
	}
	require.True(t, hasElse)
}

func TestParseCallExpr(t *testing.T) {
	src := "SRCS := $(wildcard *.c)\n"
	tr, err := Parse(src, "Makefile", 8, false)
	require.NoError(t, err)

	stmts := tr.Root.Children[0]
	assign := stmts.Children[0]
	require.Equal(t, STAssignmentExpr, assign.SType)

	var found bool
	for _, c := range assign.Children {
		if c.SType == STCallExpr {
			found = true
		}
	}
	require.True(t, found)
}

func TestCommentNotRecognizedInsideQuotedRecipeText(t *testing.T) {
	src := "target:\n\techo '#define VERSION \"0.9\"' > $@\n"
	tr, err := Parse(src, "Makefile", 8, false)
	require.NoError(t, err)

	stmts := tr.Root.Children[0]
	rule := stmts.Children[0]
	for _, c := range rule.Children {
		if c.SType == STRecipe {
			require.Len(t, c.Children, 1)
			line := c.Children[0]
			for _, lc := range line.Children {
				require.NotEqual(t, STComment, lc.SType)
			}
		}
	}
}
