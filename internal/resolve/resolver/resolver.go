// Package resolver implements the single entry point that drives one
// resolution: build a record's blocking keys, find candidate entities,
// fuse them under a survivor, attach the record, and chase the transitive
// closure of newly fused composite keys until fixpoint.
//
// The driver has no suspension points and performs no I/O; it is meant to
// run to completion under the exclusive lock the engine package holds for
// the duration of a Resolve call.
package resolver

import (
	"sort"

	"go.uber.org/zap"

	"github.com/brightline-data/resolver/internal/resolve/config"
	"github.com/brightline-data/resolver/internal/resolve/dsu"
	"github.com/brightline-data/resolver/internal/resolve/entitystore"
	"github.com/brightline-data/resolver/internal/resolve/keyindex"
	"github.com/brightline-data/resolver/internal/resolve/keys"
	"github.com/brightline-data/resolver/internal/resolve/record"
)

// Resolve matches rec against all previously seen records under cfg's
// blocking patterns, fuses matched entities, attaches rec, and chases the
// transitive closure of the fused entity's composite keys until no new
// merges occur. It returns the id of the (possibly newly created) surviving
// entity.
//
// The only error it can return is *InvariantError: Resolve never rejects a
// well-formed record; resolution is monotone and always succeeds. Input
// validation happens at the HTTP boundary before a record ever reaches here.
func Resolve(
	cfg config.ResolutionConfiguration,
	idx *keyindex.Index,
	forest *dsu.Forest,
	store *entitystore.Store,
	rec record.Record,
	log *zap.Logger,
) (string, error) {
	// 1. Build the record's own blocking keys.
	recKeys := keys.KeysForRecord(rec, cfg.Keys)
	log.Debug("built record keys", zap.String("record_id", rec.ID()), zap.Int("count", len(recKeys)))

	// 2. Collect candidate roots via the key index.
	roots := make(map[string]struct{})
	for _, v := range recKeys {
		id, ok := idx.Get(v)
		if !ok {
			continue
		}
		if !forest.Has(id) {
			return "", &InvariantError{Invariant: "key_index_orphan", Detail: "key index entry " + id + " absent from union-find forest"}
		}
		roots[forest.FindRoot(id)] = struct{}{}
	}

	// 3. No candidates: mint a fresh entity and index its keys.
	if len(roots) == 0 {
		ent := store.NewEntity(rec)
		forest.MakeSet(ent.ID)
		for _, v := range recKeys {
			idx.PutIfAbsent(v, ent.ID)
		}
		log.Debug("created entity", zap.String("entity_id", ent.ID), zap.String("record_id", rec.ID()))
		return ent.ID, nil
	}

	// 4. Choose the survivor and fuse every other candidate into it.
	root := lexMin(roots)
	target, ok := store.Get(root)
	if !ok {
		return "", &InvariantError{Invariant: "missing_entity", Detail: "root " + root + " has no entity-store entry"}
	}
	for other := range roots {
		if other == root {
			continue
		}
		otherEnt, ok := store.Get(other)
		if !ok {
			return "", &InvariantError{Invariant: "missing_entity", Detail: "root " + other + " has no entity-store entry"}
		}
		forest.Union(root, other)
		store.Fuse(target, otherEnt)
	}

	// 5. Attach the record to the surviving entity.
	entitystore.Append(target, rec)

	// 6. Transitive closure: rebuild composite keys from the fused entity
	// and pursue further merges until none remain.
	for {
		composite := keys.KeysForEntity(target.Attrs, cfg.Keys)
		more := make(map[string]struct{})
		for _, kv := range composite {
			id, ok := idx.Get(kv.Value)
			if !ok {
				continue
			}
			if !forest.Has(id) {
				return "", &InvariantError{Invariant: "key_index_orphan", Detail: "key index entry " + id + " absent from union-find forest"}
			}
			r := forest.FindRoot(id)
			if r != root {
				more[r] = struct{}{}
			}
		}
		if len(more) == 0 {
			break
		}
		for r := range more {
			otherEnt, ok := store.Get(r)
			if !ok {
				return "", &InvariantError{Invariant: "missing_entity", Detail: "root " + r + " has no entity-store entry"}
			}
			forest.Union(root, r)
			store.Fuse(target, otherEnt)
		}
		log.Debug("transitive merge round", zap.String("root", root), zap.Int("merged", len(more)))
	}

	// 7. Index any newly minted composite keys for the now-stable root.
	for _, kv := range keys.KeysForEntity(target.Attrs, cfg.Keys) {
		idx.PutIfAbsent(kv.Value, root)
	}

	return root, nil
}

// lexMin returns the lexicographically smallest id in roots. roots is
// always non-empty when called.
func lexMin(roots map[string]struct{}) string {
	ids := make([]string, 0, len(roots))
	for id := range roots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids[0]
}
