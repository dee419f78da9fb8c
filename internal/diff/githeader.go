package diff

// GitInvocation describes one of git's two external-diff-driver call
// shapes (git(1), "GIT_EXTERNAL_DIFF"): either
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// (7 positional args) or the same with a rename pair appended:
//
//	path old-file old-hex old-mode new-file new-hex new-mode rename-old rename-new
//
// (9 args). diff's CLI checks its positional arguments (flags already
// parsed out by cobra) against this shape before reading them as OLD NEW
// (S6), keeping a per-file {from, to} header pair repointed at
// git's invocation convention instead of a normalized multi-file diff
// listing.
type GitInvocation struct {
	Path           string
	OldFile        string
	OldHex         string
	OldMode        string
	NewFile        string
	NewHex         string
	NewMode        string
	RenameOld      string
	RenameNew      string
	HasRename      bool
}

// DetectGitInvocation reports whether args (the diff subcommand's
// positional arguments) matches one of git's external-diff-driver call
// shapes.
func DetectGitInvocation(args []string) (*GitInvocation, bool) {
	switch len(args) {
	case 7:
		return &GitInvocation{
			Path: args[0], OldFile: args[1], OldHex: args[2], OldMode: args[3],
			NewFile: args[4], NewHex: args[5], NewMode: args[6],
		}, true
	case 9:
		return &GitInvocation{
			Path: args[0], OldFile: args[1], OldHex: args[2], OldMode: args[3],
			NewFile: args[4], NewHex: args[5], NewMode: args[6],
			RenameOld: args[7], RenameNew: args[8], HasRename: true,
		}, true
	default:
		return nil, false
	}
}

// IdenticalBlobs reports whether the invocation's old and new blob hashes
// are equal, the case where diff can print only the two-line header and
// exit without parsing either side (S6).
func (g *GitInvocation) IdenticalBlobs() bool {
	return g.OldHex == g.NewHex
}
