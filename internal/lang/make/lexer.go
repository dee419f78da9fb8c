package make

import "sort"

// lineIndex maps a byte offset into the original file contents back to its
// 1-based (line, col), by binary-searching a precomputed table of line
// start offsets. Kept separate from logical-line splitting so every part of
// the parser can recover a position from a raw offset without re-scanning.
type lineIndex struct {
	starts []int
}

func newLineIndex(contents string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) at(offset int) (line, col int) {
	i := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - li.starts[i] + 1
}

// lline is one logical Makefile line: one or more physical lines joined by
// a trailing unescaped backslash (MakeSType::LineGlue, §6.1). norm holds
// the line's text with each "\<EOL>" continuation collapsed to a single
// space so statement parsing can treat it as one run of text; orig maps
// each byte of norm back to its offset in the original file contents.
type lline struct {
	norm  string
	orig  []int
	start int // original offset of the line's first character
	end   int // original offset one past the line's last character
	glues []int
}

// splitLogical walks contents once, joining backslash-continued physical
// lines into logical lines.
func splitLogical(contents string) []lline {
	var out []lline
	n := len(contents)
	i := 0
	for i < n {
		start := i
		var norm []byte
		var orig []int
		var glues []int
		for i < n {
			c := contents[i]
			if c == '\\' && i+1 < n && contents[i+1] == '\n' {
				glues = append(glues, i)
				norm = append(norm, ' ')
				orig = append(orig, i)
				i += 2
				continue
			}
			if c == '\n' {
				i++
				break
			}
			norm = append(norm, c)
			orig = append(orig, i)
			i++
		}
		out = append(out, lline{
			norm:  string(norm),
			orig:  orig,
			start: start,
			end:   i,
			glues: glues,
		})
	}
	return out
}

// offsetAt translates a byte index into l.norm into its offset in the
// original file contents.
func (l lline) offsetAt(i int) int {
	switch {
	case len(l.orig) == 0:
		return l.start
	case i < 0:
		return l.orig[0]
	case i >= len(l.orig):
		return l.orig[len(l.orig)-1] + 1
	default:
		return l.orig[i]
	}
}
