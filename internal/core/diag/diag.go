// Package diag provides the debug-gated stderr diagnostics front-ends use
// to report recoverable oddities (missing SType mappings in tree-sitter
// grammars, Parse warnings) without failing a comparison (§7). A
// structured logging library earns its keep when logs need to be
// queried or shipped somewhere; here it's a handful of best-effort lines
// gated by a single flag, so plain fmt.Fprintf is the right tool.
package diag

import (
	"fmt"
	"io"
	"os"
)

// enabled mirrors the "global state for terminal decorations" shape (§9):
// a process-wide flag that diff.Compare and diff.ParseFile set from their
// Options.Debug (the CLI's --debug) on every call, and which only this
// package ever reads.
var enabled bool

// Out is the writer diagnostics go to; overridable by tests.
var Out io.Writer = os.Stderr

// SetDebug toggles whether Warnf/Printf actually write anything. Called
// by diff.Compare and diff.ParseFile with their Options.Debug.
func SetDebug(v bool) {
	enabled = v
}

// Enabled reports the current debug flag, for callers that want to skip
// building an expensive message when diagnostics are off.
func Enabled() bool {
	return enabled
}

// Warnf writes a "warning: "-prefixed diagnostic line when debug mode is
// on. Used for recoverable front-end oddities: an unmapped tree-sitter
// node type, a skipped Make directive, and similar.
func Warnf(format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(Out, "warning: "+format+"\n", args...)
}

// Printf writes a plain diagnostic line when debug mode is on, for parse
// traces and phase notices that aren't warnings.
func Printf(format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(Out, format+"\n", args...)
}
