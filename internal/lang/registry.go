// Package lang resolves a source file to a language Policy (package
// ztree): a static registry of name -> Policy, populated by each
// front-end's init(), plus the extension-based detection table the CLI
// consults when the user doesn't pass --lang explicitly (§6.2).
package lang

import "github.com/zograscope/zograscope/internal/core/ztree"

var registry = map[string]ztree.Policy{}

// Register adds a Policy under name. Front-end packages call this from
// their own init(), registering themselves on import.
func Register(name string, p ztree.Policy) {
	registry[name] = p
}

// Lookup returns the Policy registered under name, or false if none was.
func Lookup(name string) (ztree.Policy, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns every registered language name, for --lang's help text and
// error messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
