package diff

import (
	"fmt"
	"os"

	"github.com/zograscope/zograscope/internal/core/arena"
	"github.com/zograscope/zograscope/internal/core/diag"
	"github.com/zograscope/zograscope/internal/core/stree"
	"github.com/zograscope/zograscope/internal/core/ztree"
	"github.com/zograscope/zograscope/internal/lang"
)

// Options configures one comparison run (§6.3's shared diff/find/stats
// flags).
type Options struct {
	// Lang forces a language rather than detecting it from the file
	// extension (§6.2).
	Lang string
	// TabWidth controls tab expansion during leaf stringification (§4.2,
	// "tabWidth"); 0 means "use the default of 4".
	TabWidth int
	// Fine requests materializing straight from the PTree, skipping STree
	// reduction, for a finer-grained (and slower) comparison.
	Fine bool
	// Debug routes front-end warnings to stderr via internal/core/diag.
	Debug bool
}

func (o Options) tabWidth() int {
	if o.TabWidth <= 0 {
		return 4
	}
	return o.TabWidth
}

// Side is one half of a comparison: the resulting semantic tree plus
// whether its front-end reported a parse failure (§7).
type Side struct {
	Tree   *ztree.Node
	Failed bool
}

// Result is a completed comparison: both sides' trees, already run
// through ztree.Compare, ready for internal/printer or internal/find to
// walk.
type Result struct {
	Language string
	Left     Side
	Right    Side
}

// Compare runs the full §2 pipeline on two file versions: detect language,
// parse, reduce/materialize, transform, and diff. leftPath/rightPath are
// used only for language detection and error messages; pass the same path
// twice for a same-file two-version comparison.
func Compare(leftPath, rightPath, leftContents, rightContents string, opts Options) (*Result, error) {
	diag.SetDebug(opts.Debug)

	langName, err := lang.Detect(rightPath, opts.Lang)
	if err != nil {
		langName, err = lang.Detect(leftPath, opts.Lang)
		if err != nil {
			return nil, &UnknownLanguageError{Path: rightPath}
		}
	}
	policy, ok := lang.Lookup(langName)
	if !ok {
		return nil, &UnknownLanguageError{Path: rightPath}
	}

	left, leftFailed, err := buildSide(policy, leftPath, leftContents, opts)
	if err != nil {
		return nil, err
	}
	right, rightFailed, err := buildSide(policy, rightPath, rightContents, opts)
	if err != nil {
		return nil, err
	}

	ztree.Transform(left, policy)
	ztree.Transform(right, policy)
	ztree.Compare(policy, left, right)

	return &Result{
		Language: langName,
		Left:     Side{Tree: left, Failed: leftFailed},
		Right:    Side{Tree: right, Failed: rightFailed},
	}, nil
}

// ParseFile runs a single file through the same Parse -> (STree reduce ->)
// Materialize -> Transform steps Compare runs per side, for tools that
// only ever look at one tree at a time (`find`, `stats`, `hi`) rather than
// comparing two versions.
func ParseFile(path, contents string, opts Options) (*ztree.Node, string, bool, error) {
	diag.SetDebug(opts.Debug)

	langName, err := lang.Detect(path, opts.Lang)
	if err != nil {
		return nil, "", false, &UnknownLanguageError{Path: path}
	}
	policy, ok := lang.Lookup(langName)
	if !ok {
		return nil, "", false, &UnknownLanguageError{Path: path}
	}

	root, failed, err := buildSide(policy, path, contents, opts)
	if err != nil {
		return nil, langName, failed, err
	}
	ztree.Transform(root, policy)
	return root, langName, failed, nil
}

// buildSide runs one file through Parse -> (STree reduce ->) Materialize.
func buildSide(policy ztree.Policy, path, contents string, opts Options) (*ztree.Node, bool, error) {
	tw := opts.tabWidth()

	pt, err := policy.Parse(contents, path, tw, opts.Debug)
	if err != nil {
		return nil, true, &ParseError{Path: path, Err: err}
	}
	if pt.Root == nil {
		return nil, true, &ParseError{Path: path, Err: fmt.Errorf("empty parse tree")}
	}

	pool := arena.NewPool[ztree.Node]()
	a := arena.New()

	var root *ztree.Node
	if opts.Fine {
		root = ztree.MaterializeFine(policy, contents, pt.Root, pool, a, tw)
	} else {
		st := stree.Reduce(pt.Root)
		root = ztree.Materialize(policy, contents, st.Root, pool, a, tw)
	}
	return root, pt.Failed, nil
}

// ReadFile reads a file from disk, wrapping any failure as an IOError so
// callers can distinguish it from a ParseError.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	return string(data), nil
}
