// Package arena implements the append-only storage backing a single parse
// or comparison tree: a bump allocator for nodes and a deque-like intern
// pool for the strings those nodes reference.
//
// Go has no polymorphic-allocator equivalent to thread through constructors
// the way the original C++ does, so Arena is instead an explicit value
// handed to every constructor that needs to allocate — the same "make
// allocation explicit and test-friendly" idea from a different angle. A Go
// GC collects whatever an Arena stops referencing, so there is no manual
// teardown step; Arena's only job is to keep nodes and labels alive with
// stable addresses for as long as the owning Tree is alive, and to batch
// the many small allocations a parse produces into few actual Go
// allocations.
package arena

// Arena owns every interned string for one parse/comparison tree. Node
// storage itself lives in a Pool[T] (pool.go); Arena's only job is string
// interning, kept as a separate small type since a Tree, an STree and a
// PTree each need their own Pool[T] but can share one Arena's intern table.
type Arena struct {
	intern internPool
}

// New creates an empty Arena.
func New() *Arena {
	return &Arena{}
}

// internPool is a simple append-only slice of interned strings. Unlike the
// original's pmr::deque, Go slices can reallocate their backing array on
// growth, but that's harmless here: callers receive back a Go string
// (already a safe, ref-counted view onto the backing bytes), never a
// pointer into the pool's own slice header.
type internPool struct {
	strs []string
	// index deduplicates identical labels so that repeated tokens (a
	// comma, a semicolon, a common identifier) share one backing string
	// and compare equal by identity as well as by value.
	index map[string]string
}

// Intern returns a canonical, arena-owned copy of s. Repeated calls with
// equal strings return the exact same Go string value.
func (a *Arena) Intern(s string) string {
	if a.intern.index == nil {
		a.intern.index = make(map[string]string)
	}
	if v, ok := a.intern.index[s]; ok {
		return v
	}
	// Copy to detach from any caller-owned backing array (e.g. a slice of
	// file contents) before retaining it for the arena's lifetime.
	cp := string([]byte(s))
	a.intern.index[cp] = cp
	a.intern.strs = append(a.intern.strs, cp)
	return cp
}

// Len reports how many distinct strings have been interned. Exposed for
// --dump-tree/--time-report diagnostics.
func (a *Arena) Len() int {
	return len(a.intern.strs)
}
