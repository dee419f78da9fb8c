package token

// MType is the coarse semantic category a language policy assigns to an
// SType via Policy.Classify. It is consumed by the external tooling
// interface (find's matcher chain, stats' function-size summaries, the
// distiller's Function-vs-everything-else similarity threshold).
type MType uint8

const (
	Other MType = iota
	Declaration
	Statement
	Function
	Call
	Parameter
	Comment
	Directive
	Block
)

var mtypeNames = [...]string{
	"Other", "Declaration", "Statement", "Function", "Call", "Parameter",
	"Comment", "Directive", "Block",
}

func (m MType) String() string {
	if int(m) < len(mtypeNames) {
		return mtypeNames[m]
	}
	return "Unknown"
}

// CanNest reports whether nodes of this meta-type are permitted to contain
// further nodes of the same meta-type. Block is the only one that is:
// a block of statements can contain nested blocks, but e.g. two Functions
// never nest in any of the languages this pipeline targets.
func CanNest(m MType) bool {
	return m == Block
}
