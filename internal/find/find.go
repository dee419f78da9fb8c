package find

import (
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/zograscope/zograscope/internal/config"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/diff"
	"github.com/zograscope/zograscope/internal/lang"
)

// Hit is one matched node, positioned for the CLI to print
// "path:line:col: text" the way the reference Finder does.
type Hit struct {
	Path string
	Line int
	Col  int
	Node *ztree.Node
}

// Options configures one Find run (§6.3 `find`).
type Options struct {
	// Paths lists files and/or directories to search; a directory is
	// walked recursively, into every subdirectory.
	Paths []string
	// Patterns is the outer-to-inner matcher chain, e.g. []string{"func",
	// "call:memcpy"}.
	Patterns []string
	// CountOnly suppresses per-hit output in favor of the seen/matched
	// summary per matcher link (§6.3's --count).
	CountOnly bool
	// DiffOpts carries --lang/--tab-width/--debug through to parsing.
	DiffOpts diff.Options
	// Project, if non-nil, supplies .zograscope.yml's ignore globs and
	// per-path language overrides (§A config loading).
	Project *config.Project
}

// Result is the outcome of one Find run: every hit found (empty when
// CountOnly is set) and the matcher chain afterward, so the caller can
// print its seen/matched report.
type Result struct {
	Hits  []Hit
	Chain *Matcher
}

// Find walks opts.Paths, parses every file whose language it can detect,
// and runs opts.Patterns' matcher chain over each resulting tree. Per-file
// errors (a stat or read failure, a parse failure) are collected rather
// than aborting the whole search, via go.uber.org/multierr, matching
// spec.md's "a find run across many files" error-aggregation note. Files
// whose language can't be detected are skipped without an error.
func Find(opts Options) (*Result, error) {
	chain, err := NewChain(opts.Patterns)
	if err != nil {
		return nil, err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	res := &Result{Chain: chain}
	var errs error
	for _, p := range paths {
		if walkErr := walkPath(p, opts, chain, res); walkErr != nil {
			errs = multierr.Append(errs, walkErr)
		}
	}
	return res, errs
}

func walkPath(path string, opts Options, chain *Matcher, res *Result) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return processFile(path, opts, chain, res)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	var errs error
	for _, e := range entries {
		full := filepath.Join(path, e.Name())
		if e.IsDir() {
			if err := walkPath(full, opts, chain, res); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}
		if err := processFile(full, opts, chain, res); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func processFile(path string, opts Options, chain *Matcher, res *Result) error {
	if opts.Project != nil && opts.Project.Ignored(path) {
		return nil
	}

	fileOpts := opts.DiffOpts
	if opts.Project != nil && fileOpts.Lang == "" {
		fileOpts.Lang = opts.Project.LangFor(path)
	}

	if _, err := lang.Detect(path, fileOpts.Lang); err != nil {
		// Not a recognized source file; silently skip it the way the
		// reference Finder::search's Language::matches filter does.
		return nil
	}

	contents, err := diff.ReadFile(path)
	if err != nil {
		return err
	}

	root, _, _, err := diff.ParseFile(path, contents, fileOpts)
	if err != nil {
		return err
	}

	chain.Match(root, func(n *ztree.Node) {
		if opts.CountOnly {
			return
		}
		res.Hits = append(res.Hits, Hit{Path: path, Line: n.Line, Col: n.Col, Node: n})
	})
	return nil
}
