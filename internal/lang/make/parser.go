package make

import (
	"strings"

	"github.com/zograscope/zograscope/internal/core/ptree"
)

// parser turns a flat []lline into a ptree.Tree, grounded on the shape
// MakeLanguage.cpp's toString/classify switch implies for its own parser's
// output: Makefile > Statements > {AssignmentExpr, Rule, IfStmt, Include,
// Directive, Comment}, with Rule carrying a Recipe of RecipeLine children.
type parser struct {
	tree  *ptree.Tree
	lines []lline
	li    *lineIndex
}

// Parse builds a ptree.Tree for a Makefile's contents by hand: no
// off-the-shelf grammar library targets Make (§6.1), so this is a
// direct, line-oriented recursive-descent parser rather than a
// tree-sitter walk.
func Parse(contents, path string, tabWidth int, debug bool) (*ptree.Tree, error) {
	t := &ptree.Tree{}
	p := &parser{
		tree:  t,
		lines: splitLogical(contents),
		li:    newLineIndex(contents),
	}

	stmts, _ := p.parseStatements(0, nil)
	root := t.New()
	root.SType = STMakefile
	root.Token = tokNone
	root.Children = []*ptree.Node{stmts}
	t.Root = root
	return t, nil
}

func (p *parser) leaf(st ptree.SType, tok int, from, to int) *ptree.Node {
	n := p.tree.New()
	n.SType = st
	n.Token = tok
	n.From = from
	n.Len = to - from
	line, col := p.li.at(from)
	n.Line, n.Col = line, col
	return n
}

func (p *parser) glueLeaves(l lline) []*ptree.Node {
	var out []*ptree.Node
	for _, g := range l.glues {
		out = append(out, p.leaf(STLineGlue, tokGlue, g, g+1))
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var directiveKeywords = map[string]bool{
	"include": true, "-include": true, "sinclude": true,
	"override": true, "export": true, "unexport": true,
	"undefine": true, "vpath": true, "private": true,
}

func firstWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := 0
	for i < len(s) && !isSpaceByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' }

// parseStatements consumes lines[from:] into an STStatements node, honoring
// the §6.1 "decompose conditionals" expectation that an ifdef/else/endif
// structure's bodies are nested Statements blocks of their own (so a diff
// inside one branch doesn't force the whole conditional to re-match, per
// make-parsing.cpp's "Statement list in conditionals is decomposed" case).
// stop, if non-nil, reports whether the logical line at idx ends this
// block (an else/endif belonging to an enclosing ifdef), leaving it
// unconsumed for the caller to interpret.
func (p *parser) parseStatements(from int, stop func(l lline) bool) (*ptree.Node, int) {
	stmts := p.tree.New()
	stmts.SType = STStatements
	stmts.Token = tokNone

	i := from
	for i < len(p.lines) {
		l := p.lines[i]
		if stop != nil && stop(l) {
			break
		}
		if isBlank(l.norm) {
			i++
			continue
		}
		trimmed := strings.TrimLeft(l.norm, " \t")
		if strings.HasPrefix(trimmed, "#") {
			stmts.Children = append(stmts.Children, p.glueLeaves(l)...)
			stmts.Children = append(stmts.Children, p.parseComment(l))
			i++
			continue
		}

		word, _ := firstWord(trimmed)
		switch word {
		case "ifdef", "ifndef", "ifeq", "ifneq":
			node, next := p.parseIf(i)
			stmts.Children = append(stmts.Children, node)
			i = next
			continue
		case "define":
			node, next := p.parseDefine(i)
			stmts.Children = append(stmts.Children, node)
			i = next
			continue
		}
		if directiveKeywords[word] {
			stmts.Children = append(stmts.Children, p.parseDirective(i))
			i++
			continue
		}

		kind, pos := scanAssignOrColon(l.norm)
		switch kind {
		case "assign":
			stmts.Children = append(stmts.Children, p.parseAssignment(l, pos))
			i++
		case "rule":
			node, next := p.parseRule(i, pos)
			stmts.Children = append(stmts.Children, node)
			i = next
		default:
			stmts.Children = append(stmts.Children, p.parseOpaqueStatement(l))
			i++
		}
	}
	return stmts, i
}

func (p *parser) parseComment(l lline) *ptree.Node {
	n := p.leaf(STComment, tokComment, l.start, l.end)
	return n
}

// parseOpaqueStatement handles a logical line this parser's simplified
// grammar doesn't otherwise classify (e.g. a bare recipe continuation
// found outside of any rule, or an unrecognized directive): it's kept as
// a single Text leaf so comparison still sees it rather than dropping it.
func (p *parser) parseOpaqueStatement(l lline) *ptree.Node {
	return p.leaf(STText, tokText, l.start, l.end)
}

// scanAssignOrColon finds the first top-level (outside any ( ) or { })
// assignment operator or rule colon in norm, mirroring GNU make's own
// left-to-right disambiguation between "TARGET: deps" and "VAR := value".
func scanAssignOrColon(norm string) (kind string, pos int) {
	depth := 0
	for i := 0; i < len(norm); i++ {
		c := norm[i]
		switch c {
		case '(', '{':
			depth++
			continue
		case ')', '}':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth != 0 {
			continue
		}
		switch {
		case c == '+' || c == '?' || c == '!':
			if i+1 < len(norm) && norm[i+1] == '=' {
				return "assign", i
			}
		case c == ':':
			if i+1 < len(norm) && norm[i+1] == '=' {
				return "assign", i
			}
			if i+1 < len(norm) && norm[i+1] == ':' {
				if i+2 < len(norm) && norm[i+2] == '=' {
					return "assign", i
				}
				return "rule", i
			}
			return "rule", i
		case c == '=':
			return "assign", i
		}
	}
	return "", -1
}

func assignOpLen(norm string, pos int) int {
	switch {
	case pos+2 < len(norm) && norm[pos:pos+3] == "::=":
		return 3
	case pos+1 < len(norm) && (norm[pos:pos+2] == ":=" || norm[pos:pos+2] == "+=" ||
		norm[pos:pos+2] == "?=" || norm[pos:pos+2] == "!="):
		return 2
	default:
		return 1
	}
}

func (p *parser) parseAssignment(l lline, opPos int) *ptree.Node {
	n := p.tree.New()
	n.SType = STAssignmentExpr
	n.Token = tokNone

	nameStart := l.offsetAt(0)
	trimmedLen := len(strings.TrimRight(l.norm[:opPos], " \t"))
	nameEnd := l.offsetAt(trimmedLen)
	if trimmedLen > 0 {
		n.Children = append(n.Children, p.leaf(STIdentifier, tokIdentifier, nameStart, nameEnd))
	}

	opLen := assignOpLen(l.norm, opPos)
	opFrom := l.offsetAt(opPos)
	opTo := l.offsetAt(opPos + opLen)
	n.Children = append(n.Children, p.leaf(STPunctuation, tokAssignOp, opFrom, opTo))

	valStart := opPos + opLen
	n.Children = append(n.Children, p.parseValue(l, valStart, len(l.norm))...)
	n.Children = append(n.Children, p.glueLeaves(l)...)
	return n
}

func (p *parser) parseRule(idx int, colonPos int) (*ptree.Node, int) {
	l := p.lines[idx]
	n := p.tree.New()
	n.SType = STRule
	n.Token = tokNone

	targets := p.tree.New()
	targets.SType = STTargetList
	targets.Token = tokNone
	targets.Children = p.parseValue(l, 0, colonPos)
	n.Children = append(n.Children, targets)

	colonLen := 1
	if colonPos+1 < len(l.norm) && l.norm[colonPos+1] == ':' {
		colonLen = 2
	}
	colonFrom := l.offsetAt(colonPos)
	colonTo := l.offsetAt(colonPos + colonLen)
	tok := tokColon
	if colonLen == 2 {
		tok = tokDoubleColon
	}
	n.Children = append(n.Children, p.leaf(STPunctuation, tok, colonFrom, colonTo))

	prereqs := p.tree.New()
	prereqs.SType = STPrereqList
	prereqs.Token = tokNone
	prereqs.Children = p.parseValue(l, colonPos+colonLen, len(l.norm))
	n.Children = append(n.Children, prereqs)
	n.Children = append(n.Children, p.glueLeaves(l)...)

	next := idx + 1
	var recipeLines []*ptree.Node
	for next < len(p.lines) {
		rl := p.lines[next]
		if len(rl.norm) == 0 || rl.norm[0] != '\t' {
			if isBlank(rl.norm) {
				break
			}
			break
		}
		recipeLines = append(recipeLines, p.parseRecipeLine(rl))
		next++
	}
	if len(recipeLines) > 0 {
		recipe := p.tree.New()
		recipe.SType = STRecipe
		recipe.Token = tokNone
		recipe.Children = recipeLines
		n.Children = append(n.Children, recipe)
	}
	return n, next
}

// parseRecipeLine keeps a recipe line's shell text as one leaf, splitting
// off a trailing "#..." only when it starts outside of any quoted string
// (make-parsing.cpp's "Comments aren't recognized inside strings" case).
func (p *parser) parseRecipeLine(l lline) *ptree.Node {
	text := l.norm
	commentAt := -1
	inS, inD := false, false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\'':
			if !inD {
				inS = !inS
			}
		case '"':
			if !inS {
				inD = !inD
			}
		case '#':
			if !inS && !inD {
				commentAt = i
			}
		}
		if commentAt >= 0 {
			break
		}
	}

	n := p.tree.New()
	n.SType = STRecipeLine
	n.Token = tokNone
	if commentAt < 0 {
		n.Children = append(n.Children, p.leaf(STText, tokText, l.start, l.end))
	} else {
		bodyEnd := l.offsetAt(commentAt)
		if commentAt > 0 {
			n.Children = append(n.Children, p.leaf(STText, tokText, l.start, bodyEnd))
		}
		n.Children = append(n.Children, p.leaf(STComment, tokComment, bodyEnd, l.end))
	}
	n.Children = append(n.Children, p.glueLeaves(l)...)
	return n
}

func (p *parser) parseIf(idx int) (*ptree.Node, int) {
	l := p.lines[idx]
	n := p.tree.New()
	n.SType = STIfStmt
	n.Token = tokNone

	kwStart := l.offsetAt(0)
	word, rest := firstWord(l.norm)
	kwEnd := l.offsetAt(len(word))
	n.Children = append(n.Children, p.leaf(STDirective, tokDirective, kwStart, kwEnd))

	condOff := len(l.norm) - len(rest)
	condStart := l.offsetAt(condOff)
	condEnd := l.end
	if trimmed := strings.TrimRight(rest, " \t"); len(trimmed) > 0 {
		condEnd = l.offsetAt(condOff + len(trimmed))
	}
	n.Children = append(n.Children, p.leaf(STIfCond, tokText, condStart, condEnd))

	depth := 0
	stopAtElse := func(l lline) bool {
		w, _ := firstWord(strings.TrimLeft(l.norm, " \t"))
		switch w {
		case "ifdef", "ifndef", "ifeq", "ifneq":
			depth++
			return false
		case "endif":
			if depth == 0 {
				return true
			}
			depth--
			return false
		case "else":
			return depth == 0
		default:
			return false
		}
	}
	body, next := p.parseStatements(idx+1, stopAtElse)
	n.Children = append(n.Children, body)

	if next < len(p.lines) {
		w, _ := firstWord(strings.TrimLeft(p.lines[next].norm, " \t"))
		if w == "else" {
			elseClause := p.tree.New()
			elseClause.SType = STElseClause
			elseClause.Token = tokNone
			depth = 0
			stopAtEndif := func(l lline) bool {
				w, _ := firstWord(strings.TrimLeft(l.norm, " \t"))
				switch w {
				case "ifdef", "ifndef", "ifeq", "ifneq":
					depth++
					return false
				case "endif":
					if depth == 0 {
						return true
					}
					depth--
					return false
				default:
					return false
				}
			}
			elseBody, next2 := p.parseStatements(next+1, stopAtEndif)
			elseClause.Children = []*ptree.Node{elseBody}
			n.Children = append(n.Children, elseClause)
			next = next2
		}
	}
	if next < len(p.lines) {
		w, _ := firstWord(strings.TrimLeft(p.lines[next].norm, " \t"))
		if w == "endif" {
			next++
		}
	}
	return n, next
}

func (p *parser) parseDefine(idx int) (*ptree.Node, int) {
	l := p.lines[idx]
	n := p.tree.New()
	n.SType = STMultilineAssignment
	n.Token = tokNone

	_, rest := firstWord(l.norm)
	nameOff := len(l.norm) - len(rest)
	lead := len(rest) - len(strings.TrimLeft(rest, " \t"))
	name := strings.TrimSpace(rest)
	if len(name) > 0 {
		nameStart := l.offsetAt(nameOff + lead)
		nameEnd := l.offsetAt(nameOff + lead + len(name))
		n.Children = append(n.Children, p.leaf(STIdentifier, tokIdentifier, nameStart, nameEnd))
	}

	next := idx + 1
	bodyStart := -1
	bodyEnd := -1
	for next < len(p.lines) {
		w, _ := firstWord(strings.TrimLeft(p.lines[next].norm, " \t"))
		if w == "endef" {
			break
		}
		if bodyStart < 0 {
			bodyStart = p.lines[next].start
		}
		bodyEnd = p.lines[next].end
		next++
	}
	if bodyStart >= 0 {
		n.Children = append(n.Children, p.leaf(STText, tokText, bodyStart, bodyEnd))
	}
	if next < len(p.lines) {
		next++ // consume endef
	}
	return n, next
}

func (p *parser) parseDirective(idx int) *ptree.Node {
	l := p.lines[idx]
	word, rest := firstWord(l.norm)
	n := p.tree.New()
	n.Token = tokNone
	if word == "include" || word == "-include" || word == "sinclude" {
		n.SType = STInclude
	} else {
		n.SType = STDirective
	}

	kwStart := l.offsetAt(0)
	kwEnd := l.offsetAt(len(word))
	n.Children = append(n.Children, p.leaf(STDirective, tokDirective, kwStart, kwEnd))

	off := len(l.norm) - len(rest)
	n.Children = append(n.Children, p.parseValue(l, off, len(l.norm))...)
	n.Children = append(n.Children, p.glueLeaves(l)...)
	return n
}

// parseValue scans norm[from:to] for $(...)/${...} call expressions,
// emitting Text leaves for literal runs and CallExpr/ArgumentList/Argument
// subtrees for calls, splicing nested calls the same way (§4.2's
// splicing applies the same pattern used by the C/Bash/Lua front-ends,
// here driven directly rather than via ShouldSplice since this parser
// builds the Tree by hand already shaped the way the policy wants it).
func (p *parser) parseValue(l lline, from, to int) []*ptree.Node {
	var out []*ptree.Node
	i := from
	litStart := from
	for i < to {
		if l.norm[i] == '$' && i+1 < to && (l.norm[i+1] == '(' || l.norm[i+1] == '{') {
			if i > litStart {
				out = append(out, p.textLeaf(l, litStart, i))
			}
			call, next := p.parseCall(l, i)
			out = append(out, call)
			i = next
			litStart = i
			continue
		}
		i++
	}
	if to > litStart {
		out = append(out, p.textLeaf(l, litStart, to))
	}
	return out
}

func (p *parser) textLeaf(l lline, from, to int) *ptree.Node {
	text := l.norm[from:to]
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return p.leaf(STText, tokText, l.offsetAt(from), l.offsetAt(to))
	}
	lead := len(text) - len(strings.TrimLeft(text, " \t"))
	trail := len(text) - len(strings.TrimRight(text, " \t"))
	return p.leaf(STText, tokText, l.offsetAt(from+lead), l.offsetAt(to-trail))
}

// parseCall parses one $(...) / ${...} starting at i (the '$'), returning
// the CallExpr node and the index just past its closing bracket.
func (p *parser) parseCall(l lline, i int) (*ptree.Node, int) {
	open := l.norm[i+1]
	closeCh := byte(')')
	if open == '{' {
		closeCh = '}'
	}
	dollarFrom := l.offsetAt(i)
	openFrom := l.offsetAt(i + 1)
	openTo := l.offsetAt(i + 2)
	openTok := tokLParen
	if open == '{' {
		openTok = tokLBrace
	}

	depth := 1
	j := i + 2
	for j < len(l.norm) && depth > 0 {
		switch l.norm[j] {
		case open:
			depth++
		case closeCh:
			depth--
		}
		if depth == 0 {
			break
		}
		j++
	}
	innerEnd := j
	if innerEnd > len(l.norm) {
		innerEnd = len(l.norm)
	}

	call := p.tree.New()
	call.SType = STCallExpr
	call.Token = tokNone
	call.Children = append(call.Children,
		p.leaf(STPunctuation, tokDollar, dollarFrom, dollarFrom+1),
		p.leaf(STPunctuation, openTok, openFrom, openTo),
	)

	args := p.tree.New()
	args.SType = STArgumentList
	args.Token = tokNone
	args.Children = p.splitArgs(l, i+2, innerEnd)
	call.Children = append(call.Children, args)

	if j < len(l.norm) {
		closeTok := tokRParen
		if closeCh == '}' {
			closeTok = tokRBrace
		}
		closeFrom := l.offsetAt(j)
		call.Children = append(call.Children, p.leaf(STPunctuation, closeTok, closeFrom, closeFrom+1))
		j++
	}
	return call, j
}

// splitArgs splits a call's interior on top-level commas into Argument
// nodes, recursing into nested $(...) calls within each argument.
func (p *parser) splitArgs(l lline, from, to int) []*ptree.Node {
	var out []*ptree.Node
	depth := 0
	argStart := from
	for i := from; i < to; i++ {
		switch l.norm[i] {
		case '(', '{':
			depth++
		case ')', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, p.argNode(l, argStart, i))
				argStart = i + 1
			}
		}
	}
	out = append(out, p.argNode(l, argStart, to))
	return out
}

func (p *parser) argNode(l lline, from, to int) *ptree.Node {
	n := p.tree.New()
	n.SType = STArgument
	n.Token = tokNone
	n.Children = p.parseValue(l, from, to)
	return n
}
