// Package keyindex is the blocking-key → entity-id mapping. Bindings are
// write-once: PutIfAbsent never overwrites an existing key-value, since an
// older binding may later resolve (via the union-find forest) to a
// different root than the one that would be written on overwrite.
package keyindex

// Index maps a blocking key-value to the entity id first indexed under it.
// The caller is responsible for resolving that id through the union-find
// forest before treating it as a current root.
type Index struct {
	byValue map[string]string
}

// New returns an empty Index.
func New() *Index {
	return &Index{byValue: make(map[string]string)}
}

// Get returns the id bound to keyValue, if any.
func (idx *Index) Get(keyValue string) (string, bool) {
	id, ok := idx.byValue[keyValue]
	return id, ok
}

// PutIfAbsent binds keyValue to id unless it is already bound. Returns true
// if the binding was created.
func (idx *Index) PutIfAbsent(keyValue, id string) bool {
	if _, exists := idx.byValue[keyValue]; exists {
		return false
	}
	idx.byValue[keyValue] = id
	return true
}

// Len returns the number of distinct bound key-values.
func (idx *Index) Len() int {
	return len(idx.byValue)
}
