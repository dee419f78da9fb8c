package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zograscope/zograscope/internal/core/ztree"
	_ "github.com/zograscope/zograscope/internal/lang/c"
)

// leafSummary is a go-cmp-friendly projection of one leaf: just enough to
// state an expectation readably, without dragging parent/relative
// pointers (which would make a diff unreadable) into the comparison.
type leafSummary struct {
	Label string
	State string
	Moved bool
}

// collectLeafSummaries walks n's subtree in source order, following Next
// into finer layers the same way internal/printer's own leaf walk does,
// and projects each leaf down to a leafSummary.
func collectLeafSummaries(n *ztree.Node) []leafSummary {
	var out []leafSummary
	var walk func(*ztree.Node)
	walk = func(n *ztree.Node) {
		if n.Next != nil {
			walk(n.Next)
			return
		}
		if len(n.Children) == 0 {
			if n.Line > 0 {
				text := n.Label
				out = append(out, leafSummary{Label: text, State: n.State.String(), Moved: n.Moved})
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func countStates(leaves []leafSummary, state string) int {
	n := 0
	for _, l := range leaves {
		if l.State == state {
			n++
		}
	}
	return n
}

// changedLabels returns the labels of every non-Unchanged leaf, for a
// go-cmp comparison against an expected set — far more readable on
// failure than asserting each label individually.
func changedLabels(leaves []leafSummary) []string {
	var out []string
	for _, l := range leaves {
		if l.State != "Unchanged" {
			out = append(out, l.Label)
		}
	}
	return out
}

// TestScenarioS1ConstantChange covers spec.md S1: a single initializer
// constant changes; everything else stays Unchanged.
func TestScenarioS1ConstantChange(t *testing.T) {
	old := "struct agg var = { { .field = 1 }, };\n"
	next := "struct agg var = { { .field = 2 }, };\n"

	res, err := Compare("a.c", "a.c", old, next, Options{})
	require.NoError(t, err)
	require.False(t, res.Left.Failed)
	require.False(t, res.Right.Failed)

	leftLeaves := collectLeafSummaries(res.Left.Tree)
	rightLeaves := collectLeafSummaries(res.Right.Tree)

	require.Equal(t, 1, countStates(leftLeaves, "Updated"))
	require.Equal(t, 1, countStates(rightLeaves, "Updated"))

	if diff := cmp.Diff([]string{"1"}, changedLabels(leftLeaves)); diff != "" {
		t.Errorf("old side's changed leaves differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2"}, changedLabels(rightLeaves)); diff != "" {
		t.Errorf("new side's changed leaves differ (-want +got):\n%s", diff)
	}
}

// TestScenarioS3IncludeReorder covers spec.md S3: reordering top-level
// include directives marks every token Unchanged, with the moved ones
// flagged.
func TestScenarioS3IncludeReorder(t *testing.T) {
	old := "#include \"a\"\n#include \"b\"\n#include \"c\"\n"
	next := "#include \"b\"\n#include \"a\"\n#include \"c\"\n"

	res, err := Compare("a.c", "a.c", old, next, Options{})
	require.NoError(t, err)
	require.False(t, res.Left.Failed)
	require.False(t, res.Right.Failed)

	leftLeaves := collectLeafSummaries(res.Left.Tree)
	for _, l := range leftLeaves {
		require.Equal(t, "Unchanged", l.State, "expected every token Unchanged, got %+v", l)
	}

	moved := map[string]bool{}
	for _, l := range leftLeaves {
		if l.Moved {
			moved[l.Label] = true
		}
	}
	require.True(t, moved["a"] || moved["\"a\""], "\"a\" include should be moved, leaves: %+v", leftLeaves)
}

// TestScenarioS5CommaAttachedDeletion covers spec.md S5: deleting the
// first element of an initializer list deletes the literal and its
// trailing comma together.
func TestScenarioS5CommaAttachedDeletion(t *testing.T) {
	old := "const char *list[] = { \"a\", \"b\", };\n"
	next := "const char *list[] = { \"b\", };\n"

	res, err := Compare("a.c", "a.c", old, next, Options{})
	require.NoError(t, err)
	require.False(t, res.Left.Failed)
	require.False(t, res.Right.Failed)

	leftLeaves := collectLeafSummaries(res.Left.Tree)
	var aState, bState string
	for _, l := range leftLeaves {
		switch l.Label {
		case "\"a\"":
			aState = l.State
		case "\"b\"":
			bState = l.State
		}
	}
	require.Equal(t, "Deleted", aState, "leaves: %s", cmp.Diff(leftLeaves, nil))
	require.Equal(t, "Unchanged", bState)
}

// TestScenarioIdentityOnEqualInputs covers spec.md §8 invariant 5:
// comparing a Tree with itself yields all-Unchanged, no moves, no
// relabels.
func TestScenarioIdentityOnEqualInputs(t *testing.T) {
	src := "int f(int a, int b) {\n  int c = a + b;\n  return c;\n}\n"

	res, err := Compare("a.c", "a.c", src, src, Options{})
	require.NoError(t, err)

	for _, l := range collectLeafSummaries(res.Left.Tree) {
		require.Equal(t, "Unchanged", l.State)
		require.False(t, l.Moved)
	}
}
