package find

import "fmt"

var errNoMatchers = fmt.Errorf("expected at least one matcher")

// UnknownMatcherError reports a matcher pattern whose MType prefix isn't
// one of the recognized short names (decl, stmt, func, call, param, comm,
// dir, block).
type UnknownMatcherError struct {
	Pattern string
}

func (e *UnknownMatcherError) Error() string {
	return fmt.Sprintf("unknown matcher type: %q", e.Pattern)
}
