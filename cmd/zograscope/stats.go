package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zograscope/zograscope/internal/stats"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats [paths]",
		Short: "Report per-file line-content buckets and function-size summaries",
		RunE:  runStats,
	}
	rootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	rep, err := stats.Run(stats.Options{
		Paths:    args,
		DiffOpts: diffOptions(),
		Project:  project,
	})
	if rep == nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "files:       %d (%d auxiliary)\n", rep.Files, rep.AuxFiles)
	fmt.Fprintf(out, "lines:       %d total\n", rep.Buckets.Total())
	fmt.Fprintf(out, "  blank:     %d\n", rep.Buckets.Blank)
	fmt.Fprintf(out, "  comment:   %d\n", rep.Buckets.Comment)
	fmt.Fprintf(out, "  structural:%d\n", rep.Buckets.Structural)
	fmt.Fprintf(out, "  code:      %d\n", rep.Buckets.Code)
	fmt.Fprintf(out, "functions:   %d\n", rep.Functions)
	fmt.Fprintf(out, "  statements/fn: min=%d max=%d mean=%.1f\n",
		rep.StmtSizes.Min, rep.StmtSizes.Max, rep.StmtSizes.Mean)
	fmt.Fprintf(out, "  params/fn:     min=%d max=%d mean=%.1f\n",
		rep.ParamCounts.Min, rep.ParamCounts.Max, rep.ParamCounts.Mean)

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "zograscope: %v\n", err)
	}
	return nil
}
