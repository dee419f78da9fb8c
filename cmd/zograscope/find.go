package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zograscope/zograscope/internal/find"
)

func init() {
	cmd := &cobra.Command{
		Use:   "find [paths] : matchers...",
		Short: "List nodes matching a chain of matchers",
		RunE:  runFind,
	}
	cmd.Flags().Bool("count", false, "print only the seen/matched statistics per matcher")
	rootCmd.AddCommand(cmd)
}

// runFind implements `find` (§6.3): everything before the first bare ":"
// argument is a path, everything after the first ":" is the matcher
// chain. A second bare ":" is not a separator: it is taken as a matcher
// pattern and rejected as an unknown matcher type.
func runFind(cmd *cobra.Command, args []string) error {
	var paths, patterns []string
	seenColon := false
	for _, a := range args {
		if !seenColon && a == ":" {
			seenColon = true
			continue
		}
		if seenColon {
			patterns = append(patterns, a)
		} else {
			paths = append(paths, a)
		}
	}
	if len(patterns) == 0 {
		return fmt.Errorf("find requires at least one matcher after ':'")
	}

	countOnly, _ := cmd.Flags().GetBool("count")

	res, err := find.Find(find.Options{
		Paths:     paths,
		Patterns:  patterns,
		CountOnly: countOnly,
		DiffOpts:  diffOptions(),
		Project:   project,
	})
	if err != nil && res == nil {
		return err
	}

	out := cmd.OutOrStdout()
	if countOnly {
		printMatcherCounts(out, res.Chain)
	} else {
		for _, hit := range res.Hits {
			text := hit.Node.Spelling
			if text == "" {
				text = hit.Node.Label
			}
			fmt.Fprintf(out, "%s:%d:%d: %s\n", hit.Path, hit.Line, hit.Col, text)
		}
	}

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "zograscope: %v\n", err)
	}
	return nil
}

// printMatcherCounts implements `find --count` (§6.3): one line per link
// of the matcher chain, outermost first, reporting how many nodes of its
// MType were visited vs. how many satisfied the full remaining chain.
func printMatcherCounts(out io.Writer, m *find.Matcher) {
	for ; m != nil; m = m.Nested() {
		fmt.Fprintf(out, "%s: seen=%d matched=%d\n", m.MType(), m.Seen(), m.Matched())
	}
}
