package find

import (
	"regexp"

	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/core/ztree"
)

// Matcher is one link of a chain that walks a tree looking for nodes of a
// given MType, optionally filtering by spelling and delegating further
// matching within each hit to a nested Matcher (§6.3 `find`'s matcher
// chain). A bare pattern ("func") matches every node of that MType;
// "func:Foo" additionally requires Foo to match the node's label as a
// regular expression.
type Matcher struct {
	mtype   token.MType
	pattern *regexp.Regexp
	nested  *Matcher

	seen    int
	matched int
}

// NewChain builds a matcher chain from patterns in outer-to-inner order
// ("func", "call" means: find a Function containing a Call) and returns
// the outermost Matcher, the one Find should call Match on.
func NewChain(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, errNoMatchers
	}

	var nested *Matcher
	for i := len(patterns) - 1; i >= 0; i-- {
		m, err := newMatcher(patterns[i], nested)
		if err != nil {
			return nil, err
		}
		nested = m
	}
	return nested, nil
}

func newMatcher(pattern string, nested *Matcher) (*Matcher, error) {
	mtypeStr, spellingPat, hasPat := splitPattern(pattern)
	mtype, err := parseMType(mtypeStr)
	if err != nil {
		return nil, err
	}

	m := &Matcher{mtype: mtype, nested: nested}
	if hasPat {
		re, err := regexp.Compile(spellingPat)
		if err != nil {
			return nil, err
		}
		m.pattern = re
	}
	return m, nil
}

func splitPattern(pattern string) (mtype, rest string, hasRest bool) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == ':' {
			return pattern[:i], pattern[i+1:], true
		}
	}
	return pattern, "", false
}

func parseMType(s string) (token.MType, error) {
	switch s {
	case "decl":
		return token.Declaration, nil
	case "stmt":
		return token.Statement, nil
	case "func":
		return token.Function, nil
	case "call":
		return token.Call, nil
	case "param":
		return token.Parameter, nil
	case "comm":
		return token.Comment, nil
	case "dir":
		return token.Directive, nil
	case "block":
		return token.Block, nil
	default:
		return 0, &UnknownMatcherError{Pattern: s}
	}
}

// MType reports the meta-type this matcher looks for.
func (m *Matcher) MType() token.MType { return m.mtype }

// Seen reports how many nodes of this matcher's MType were visited.
func (m *Matcher) Seen() int { return m.seen }

// Matched reports how many of those nodes satisfied this matcher (its own
// spelling filter, if any, and its nested matcher, if any).
func (m *Matcher) Matched() int { return m.matched }

// Nested returns the next matcher in the chain, or nil at the innermost
// link.
func (m *Matcher) Nested() *Matcher { return m.nested }

// Match walks node's subtree looking for this matcher's MType, invoking
// handler on every node that satisfies the full remaining chain. It
// returns true if anything matched. Grounded directly on Matcher::match's
// recursive shape: classify each child, recurse into non-matching
// children, and - for a matching child - recurse further only when its
// MType is allowed to nest (§CanNest), so e.g. a Function never matches a
// Function nested inside it twice over for the same outer search.
func (m *Matcher) Match(n *ztree.Node, handler func(*ztree.Node)) bool {
	if n.Next != nil {
		return m.Match(n.Next, handler)
	}

	found := false
	for _, child := range n.Children {
		if child.MType != m.mtype {
			if m.Match(child, handler) {
				found = true
			}
			continue
		}

		m.seen++
		if !m.spellingMatches(child) {
			continue
		}

		if m.nested == nil {
			m.matched++
			found = true
			handler(child)
		} else if m.nested.Match(child, handler) {
			m.matched++
			found = true
		}

		if token.CanNest(m.mtype) {
			if m.Match(child, handler) {
				found = true
			}
		}
	}
	return found
}

func (m *Matcher) spellingMatches(n *ztree.Node) bool {
	if m.pattern == nil {
		return true
	}
	text := n.Label
	if text == "" {
		text = n.Spelling
	}
	return m.pattern.MatchString(text)
}
