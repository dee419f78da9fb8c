package ztree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented ASCII tree of root to w (the --dump-tree debug
// view; --dump-stree uses stree.Dump instead), mirroring the reference dumper's branch
// glyphs: a Next chain is rendered as an extra nested branch directly
// below the node it refines, rather than as a sibling.
func Dump(w io.Writer, root *Node, policy Policy) {
	dumpNode(w, root, policy, nil, 0)
}

func dumpNode(w io.Writer, n *Node, policy Policy, trace []bool, depth int) {
	var b strings.Builder
	if len(trace) == 0 {
		b.WriteString("--- ")
	} else {
		b.WriteString("    ")
	}
	for i, isLast := range trace {
		innermost := i == len(trace)-1
		switch {
		case isLast && innermost:
			b.WriteString("`-- ")
		case isLast:
			b.WriteString("    ")
		case innermost:
			b.WriteString("|-- ")
		default:
			b.WriteString("|   ")
		}
	}

	fmt.Fprintf(w, "%s%d | %s\n", b.String(), depth, describe(n, policy))

	trace = append(trace, false)
	for i, c := range n.Children {
		trace[len(trace)-1] = i == len(n.Children)-1
		dumpNode(w, c, policy, trace, depth)
		if c.Next != nil && !c.Next.Last {
			trace = append(trace, true)
			dumpNode(w, c.Next, policy, trace, depth+1)
			trace = trace[:len(trace)-1]
		}
	}
}

func describe(n *Node, policy Policy) string {
	label := n.Label
	if len(label) > 40 {
		label = label[:37] + "..."
	}
	label = strings.ReplaceAll(label, "\n", "\\n")

	flags := ""
	if n.Satellite {
		flags += "S"
	}
	if n.Moved {
		flags += "M"
	}
	if flags != "" {
		flags = " [" + flags + "]"
	}

	return fmt.Sprintf("%s %s %q%s", n.State, policy.ToString(n.SType), label, flags)
}
