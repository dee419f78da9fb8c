// Package stats implements the `stats` CLI command (§6.3): per-file
// line-content bucketing (blank/comment/code/structural) plus
// function-size and parameter-count summaries.
package stats

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/zograscope/zograscope/internal/config"
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/diff"
	"github.com/zograscope/zograscope/internal/lang"
)

// LineBuckets tallies physical lines by content kind, aggregated across
// every file a Run call walked.
type LineBuckets struct {
	Blank      int
	Comment    int
	Structural int
	Code       int
}

// Total returns the sum of every bucket.
func (b LineBuckets) Total() int {
	return b.Blank + b.Comment + b.Structural + b.Code
}

// FunctionSizes accumulates per-function statement and parameter counts
// so Report can report min/max/mean over the whole run.
type FunctionSizes struct {
	Statements []int
	Params     []int
}

func (f *FunctionSizes) add(stmts, params int) {
	f.Statements = append(f.Statements, stmts)
	f.Params = append(f.Params, params)
}

// Summary is a (min, max, mean) triple over one FunctionSizes slice.
type Summary struct {
	Min, Max int
	Mean     float64
}

func summarize(vals []int) Summary {
	if len(vals) == 0 {
		return Summary{}
	}
	s := Summary{Min: vals[0], Max: vals[0]}
	sum := 0
	for _, v := range vals {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = float64(sum) / float64(len(vals))
	return s
}

// Report is the accumulated result of one stats Run.
type Report struct {
	Files       int
	Buckets     LineBuckets
	Functions   int
	StmtSizes   Summary
	ParamCounts Summary

	// AuxFiles counts build-adjacent files (BUILD, go.mod, .proto, .thrift,
	// .sql, .star) whose syntax was validated through an auxiliary parser
	// rather than materialized into a zograscope Tree (§B of SPEC_FULL.md).
	AuxFiles int
}

// Options configures one stats Run.
type Options struct {
	Paths    []string
	DiffOpts diff.Options
	// Project, if non-nil, supplies .zograscope.yml's ignore globs and
	// per-path language overrides (§A config loading).
	Project *config.Project
}

// Run walks opts.Paths (recursively into subdirectories, the same walk
// shape as `find`'s) and accumulates a Report, aggregating per-file errors
// with go.uber.org/multierr rather than aborting on the first bad file.
func Run(opts Options) (*Report, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	rep := &Report{}
	sizes := &FunctionSizes{}
	var errs error

	for _, p := range paths {
		if err := walk(p, opts, rep, sizes); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	rep.StmtSizes = summarize(sizes.Statements)
	rep.ParamCounts = summarize(sizes.Params)
	rep.Functions = len(sizes.Statements)
	return rep, errs
}

func walk(path string, opts Options, rep *Report, sizes *FunctionSizes) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return processFile(path, opts, rep, sizes)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	var errs error
	for _, e := range entries {
		full := filepath.Join(path, e.Name())
		if e.IsDir() {
			if err := walk(full, opts, rep, sizes); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}
		if err := processFile(full, opts, rep, sizes); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func processFile(path string, opts Options, rep *Report, sizes *FunctionSizes) error {
	if opts.Project != nil && opts.Project.Ignored(path) {
		return nil
	}

	if auxKind(path) != "" {
		if err := validateAux(path); err != nil {
			return err
		}
		contents, err := diff.ReadFile(path)
		if err != nil {
			return err
		}
		bucketTextOnly(contents, auxCommentPrefix(path), &rep.Buckets)
		rep.AuxFiles++
		rep.Files++
		return nil
	}

	fileOpts := opts.DiffOpts
	if opts.Project != nil && fileOpts.Lang == "" {
		fileOpts.Lang = opts.Project.LangFor(path)
	}

	if _, err := lang.Detect(path, fileOpts.Lang); err != nil {
		return nil // not a recognized source file; silently skip (matches find's skip)
	}

	contents, err := diff.ReadFile(path)
	if err != nil {
		return err
	}

	root, _, _, err := diff.ParseFile(path, contents, fileOpts)
	if err != nil {
		return err
	}

	bucketTree(contents, root, &rep.Buckets)
	collectFunctions(root, sizes)
	rep.Files++
	return nil
}

// bucketTree classifies every physical line of contents: an empty or
// whitespace-only line is blank; otherwise the leaves (found through
// Next-layered children too) that start on the line decide. Only Comments
// leaves make a comment line; only bracket or Virtual leaves make a
// structural line; anything else, including a line on which no leaf
// starts (such as the inner lines of a multi-line comment), is code.
func bucketTree(contents string, root *ztree.Node, b *LineBuckets) {
	total := strings.Count(contents, "\n") + 1
	lineKind := make(map[int]string, total)

	var walk func(*ztree.Node)
	walk = func(n *ztree.Node) {
		if n.Next != nil {
			walk(n.Next)
			return
		}
		if len(n.Children) == 0 {
			if n.Line > 0 {
				classifyLeaf(n, lineKind)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	lines := strings.Split(contents, "\n")
	for i, text := range lines {
		ln := i + 1
		if strings.TrimSpace(text) == "" {
			b.Blank++
			continue
		}
		switch lineKind[ln] {
		case "comment":
			b.Comment++
		case "structural":
			b.Structural++
		default:
			b.Code++
		}
	}
}

func classifyLeaf(n *ztree.Node, lineKind map[int]string) {
	kind := "code"
	switch {
	case n.Type == token.Comments:
		kind = "comment"
	case isStructuralType(n.Type):
		kind = "structural"
	}
	existing, ok := lineKind[n.Line]
	if !ok {
		lineKind[n.Line] = kind
		return
	}
	if existing != kind {
		// Mixed content on one line (e.g. code followed by a trailing
		// comment) always reads as code.
		lineKind[n.Line] = "code"
	}
}

func isStructuralType(t token.Type) bool {
	switch t {
	case token.LeftBrackets, token.RightBrackets, token.Virtual:
		return true
	default:
		return false
	}
}

// collectFunctions walks root for MType==Function nodes and tallies each
// one's statement count and parameter count, stopping descent at a nested
// function so an inner function's statements aren't double-counted in its
// enclosing function's total.
func collectFunctions(root *ztree.Node, sizes *FunctionSizes) {
	var walk func(*ztree.Node)
	walk = func(n *ztree.Node) {
		if n.Next != nil {
			walk(n.Next)
			return
		}
		if n.MType == token.Function {
			stmts, params := 0, 0
			countBody(n, &stmts, &params, true)
			sizes.add(stmts, params)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func countBody(n *ztree.Node, stmts, params *int, isRoot bool) {
	if n.Next != nil {
		countBody(n.Next, stmts, params, isRoot)
		return
	}
	if !isRoot {
		switch n.MType {
		case token.Function:
			return // nested function: counted on its own pass
		case token.Statement:
			*stmts++
		case token.Parameter:
			*params++
		}
	}
	for _, c := range n.Children {
		countBody(c, stmts, params, false)
	}
}
