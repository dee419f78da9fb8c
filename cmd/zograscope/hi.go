package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zograscope/zograscope/internal/diff"
	"github.com/zograscope/zograscope/internal/printer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "hi [file|-]",
		Short: "Syntax-highlight a file on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHi,
	}
	rootCmd.AddCommand(cmd)
}

func runHi(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	var contents string
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		contents = string(data)
		path = "stdin"
	} else {
		c, err := diff.ReadFile(path)
		if err != nil {
			return err
		}
		contents = c
	}

	root, _, failed, err := diff.ParseFile(path, contents, diffOptions())
	if err != nil || failed {
		// No syntax-aware view available; fall back to printing the raw
		// text unmodified rather than failing the whole command (§7's
		// degrade-don't-abort policy, applied to a single-file view).
		_, werr := fmt.Fprint(cmd.OutOrStdout(), contents)
		return werr
	}

	return printer.Highlight(cmd.OutOrStdout(), root)
}
