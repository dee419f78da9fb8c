// Package token defines the language-neutral token and semantic categories
// shared by every layer of the comparison pipeline: the general Type
// taxonomy used for relabel-compatibility decisions and highlighting, and
// the coarser MType taxonomy used by language policies to classify
// structural nodes.
package token

// Type is the closed set of general token categories used for matching
// compatibility (canForceLeafMatch) and for syntax highlighting. Every
// front-end maps its own lexical token kinds onto this set via its
// Policy.MapToken implementation.
type Type uint8

const (
	Virtual Type = iota
	Identifiers
	Jumps
	Specifiers
	Types
	LeftBrackets
	RightBrackets
	Comparisons
	Operators
	LogicalOperators
	Assignments
	Keywords
	Directives
	Comments
	StrConstants
	IntConstants
	FPConstants
	CharConstants
	UserTypes
	Functions
	NonInterchangeable
	Other
)

var typeNames = [...]string{
	"Virtual", "Identifiers", "Jumps", "Specifiers", "Types", "LeftBrackets",
	"RightBrackets", "Comparisons", "Operators", "LogicalOperators",
	"Assignments", "Keywords", "Directives", "Comments", "StrConstants",
	"IntConstants", "FPConstants", "CharConstants", "UserTypes", "Functions",
	"NonInterchangeable", "Other",
}

// String renders the type for dumps and the aligned printer's debug output.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Canonize maps closely related types onto a single representative so that
// relabel-compatibility checks don't need to enumerate every pairing twice.
// Left/right brackets and the various operator categories are already
// distinct by design, so canonization today is the identity; it exists as a
// named hook because languages occasionally fold categories together (e.g.
// a front-end that doesn't distinguish LogicalOperators from Operators).
func Canonize(t Type) Type {
	return t
}

// Interchangeable reports whether two tokens of the given (already
// canonized) types are eligible for a relabel edit rather than a
// delete+insert pair. Per spec §3.4: equal canonical Type, and that Type is
// not in {Virtual, Comments, Directives, Identifiers}.
func Interchangeable(x, y Type) bool {
	cx, cy := Canonize(x), Canonize(y)
	if cx != cy {
		return false
	}
	switch cx {
	case Virtual, Comments, Directives, Identifiers:
		return false
	default:
		return true
	}
}
