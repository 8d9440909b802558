package resolver

import "fmt"

// InvariantError reports a violated internal invariant: e.g. an id present
// in the key index but absent from the union-find forest, or a root with no
// entity-store entry. This is a programmer bug, never a caller error, and
// is never recoverable within the current process state.
type InvariantError struct {
	Invariant string // which invariant was violated, e.g. "key_index_orphan"
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("entity resolution: invariant %s violated: %s", e.Invariant, e.Detail)
}
