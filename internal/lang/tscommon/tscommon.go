// Package tscommon holds the tree-sitter plumbing shared by every
// smacker/go-tree-sitter-backed front-end (internal/lang/c, bash, lua):
// walking a sitter.Tree into a ptree.Tree and translating a grammar's
// node-type strings into the front-end's own PNode.Token ids (§6.1
// "Parse", "MapToken").
package tscommon

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/zograscope/zograscope/internal/core/diag"
	"github.com/zograscope/zograscope/internal/core/ptree"
	"github.com/zograscope/zograscope/internal/core/token"
)

// NodeSpec is what a front-end says about one tree-sitter node-type
// string: the SType it seeds (ptree.None if it's not a seed at all) and
// the token.Type a leaf of that type maps to.
type NodeSpec struct {
	SType ptree.SType
	Type  token.Type
}

// Table interns a grammar's node-type strings into small integers
// (PNode.Token ids) and answers Policy.MapToken from that same table. It
// is built once per front-end package (a package-level var initialized by
// NewTable). Ids are assigned lazily, the first time a parse meets each
// node type, whether or not the front-end's NodeSpec map lists it —
// guarded by a mutex since Policy.Parse may run concurrently on the two
// sides of a comparison (§5).
type Table struct {
	mu     sync.Mutex
	index  map[string]int
	specs  []NodeSpec
	names  []string
	lang   *sitter.Language
	byName map[string]NodeSpec
}

// NewTable builds a Table from a language's static node-type -> NodeSpec
// map. Unknown node types encountered during a later parse still get a
// Token id (assigned lazily, defaulting to SType none/token.Other) rather
// than crashing the front-end — grammars evolve and a missing mapping is
// a §7 "warning", never a fatal error.
func NewTable(lang *sitter.Language, specs map[string]NodeSpec) *Table {
	return &Table{
		index:  make(map[string]int, len(specs)),
		lang:   lang,
		byName: specs,
	}
}

// idFor returns the stable Token id for a grammar node-type string,
// allocating one on first sight.
func (t *Table) idFor(nodeType string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[nodeType]; ok {
		return id
	}
	spec, known := t.byName[nodeType]
	if !known {
		spec = NodeSpec{SType: ptree.None, Type: token.Other}
		diag.Warnf("unmapped node type %q, treating as scaffolding", nodeType)
	}
	id := len(t.specs)
	t.index[nodeType] = id
	t.specs = append(t.specs, spec)
	t.names = append(t.names, nodeType)
	return id
}

// MapToken implements the piece of Policy that a front-end's table backs:
// translating a PNode.Token id into a token.Type.
func (t *Table) MapToken(tok int) token.Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok < 0 || tok >= len(t.specs) {
		return token.Other
	}
	return t.specs[tok].Type
}

// NodeTypeName renders a Token id back to its grammar node-type string,
// for --dump-tree/--debug diagnostics.
func (t *Table) NodeTypeName(tok int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok < 0 || tok >= len(t.names) {
		return "?"
	}
	return t.names[tok]
}

// builder threads the Table, the Pool/Arena-owned ptree.Tree and the
// original file contents through one recursive tree-sitter walk.
type builder struct {
	table    *Table
	tree     *ptree.Tree
	contents []byte
}

// Parse runs sitter on contents using table's language and returns the
// resulting ptree.Tree. debug is not consulted here: a node type missing
// from the table's NodeSpec map is reported through internal/core/diag,
// which prints only when its own debug flag is on.
func Parse(table *Table, contents, path string, debug bool) (*ptree.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(table.lang)

	src := []byte(contents)
	sTree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	root := sTree.RootNode()
	if root == nil {
		return &ptree.Tree{Failed: true}, fmt.Errorf("%s: empty parse tree", path)
	}

	t := &ptree.Tree{}
	b := &builder{table: table, tree: t, contents: src}
	t.Root = b.walk(root)
	if root.HasError() {
		t.Failed = true
	}
	return t, nil
}

func (b *builder) walk(n *sitter.Node) *ptree.Node {
	pn := b.tree.New()
	nodeType := n.Type()
	tok := b.table.idFor(nodeType)
	spec := b.specAt(tok)
	pn.SType = spec.SType
	pn.Token = tok
	pn.From = int(n.StartByte())
	pn.Len = int(n.EndByte() - n.StartByte())

	childCount := int(n.ChildCount())
	if childCount == 0 {
		pt := n.StartPoint()
		pn.Line, pn.Col = int(pt.Row)+1, int(pt.Column)+1
		return pn
	}

	pn.Children = make([]*ptree.Node, 0, childCount)
	for i := 0; i < childCount; i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		pn.Children = append(pn.Children, b.walk(c))
	}
	return pn
}

func (b *builder) specAt(tok int) NodeSpec {
	b.table.mu.Lock()
	defer b.table.mu.Unlock()
	return b.table.specs[tok]
}
