// Package entitystore holds resolved entities: the per-root id, member
// record-ids, and per-attribute normalized value-sets, plus the fusion
// operation that merges two entities under a single surviving root.
package entitystore

import (
	"github.com/google/uuid"

	"github.com/brightline-data/resolver/internal/resolve/normalize"
	"github.com/brightline-data/resolver/internal/resolve/record"
)

// Entity is a resolved group of records believed to refer to the same
// real-world entity.
type Entity struct {
	ID        string
	RecordIDs map[string]struct{}
	Attrs     map[string]map[string]struct{}
}

// Store maps entity id (always a current root) to its Entity.
type Store struct {
	byID map[string]*Entity
}

// New returns an empty Store.
func New() *Store {
	return &Store{byID: make(map[string]*Entity)}
}

// Get returns the entity stored under id, if any.
func (s *Store) Get(id string) (*Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Len returns the number of live entities (roots with a store entry).
func (s *Store) Len() int {
	return len(s.byID)
}

// Delete removes id's store entry. Called when id becomes a non-root
// redirect after Fuse.
func (s *Store) Delete(id string) {
	delete(s.byID, id)
}

// NewEntity allocates a fresh entity for rec, seeds it with rec's id and
// normalized attribute values, and stores it. The id is a random 128-bit
// UUID, globally unique within the process.
func (s *Store) NewEntity(rec record.Record) *Entity {
	e := &Entity{
		ID:        uuid.New().String(),
		RecordIDs: map[string]struct{}{rec.ID(): {}},
		Attrs:     make(map[string]map[string]struct{}),
	}
	seedAttrs(e, rec)
	s.byID[e.ID] = e
	return e
}

// Append adds rec's id and normalized attribute values onto an existing
// entity. Resolving the same record twice is idempotent: sets absorb the
// duplicate id and values without special handling.
func Append(e *Entity, rec record.Record) {
	e.RecordIDs[rec.ID()] = struct{}{}
	seedAttrs(e, rec)
}

func seedAttrs(e *Entity, rec record.Record) {
	for attr, raw := range rec.RawAttrs() {
		norm, present := normalize.Normalize(raw)
		if !present {
			continue
		}
		set, ok := e.Attrs[attr]
		if !ok {
			set = make(map[string]struct{})
			e.Attrs[attr] = set
		}
		set[norm] = struct{}{}
	}
}

// Fuse merges other into target: other's record-ids and per-attribute
// value-sets are unioned into target, then other is removed from the
// store. target's id survives; other's id survives only as a union-find
// redirect.
func (s *Store) Fuse(target, other *Entity) {
	for id := range other.RecordIDs {
		target.RecordIDs[id] = struct{}{}
	}
	for attr, vals := range other.Attrs {
		set, ok := target.Attrs[attr]
		if !ok {
			set = make(map[string]struct{}, len(vals))
			target.Attrs[attr] = set
		}
		for v := range vals {
			set[v] = struct{}{}
		}
	}
	s.Delete(other.ID)
}
