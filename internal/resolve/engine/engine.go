// Package engine is the single-writer state machine that owns the
// resolver's state (key index, union-find forest and entity store, plus
// the fixed configuration): Resolve takes an exclusive lock end-to-end;
// GetEntity also takes the exclusive lock, since FindRoot's path compression
// mutates the forest even on what looks like a read; Stats only reads map
// lengths and takes a shared lock. A sync.RWMutex guards the state,
// constructed once per process and injected with a named Zap logger.
package engine

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/brightline-data/resolver/internal/resolve/config"
	"github.com/brightline-data/resolver/internal/resolve/dsu"
	"github.com/brightline-data/resolver/internal/resolve/entitystore"
	"github.com/brightline-data/resolver/internal/resolve/keyindex"
	"github.com/brightline-data/resolver/internal/resolve/record"
	"github.com/brightline-data/resolver/internal/resolve/resolver"
)

// ErrEntityNotFound is returned by GetEntity when the given id is neither a
// known root nor a known historical id.
var ErrEntityNotFound = errors.New("entity not found")

// EntityView is the read-facing shape of a resolved entity: record-ids and
// attribute values are returned as sorted lists for deterministic output.
type EntityView struct {
	ID        string
	RecordIDs []string
	Attrs     map[string][]string
}

// Stats summarizes engine-wide counters.
type Stats struct {
	EntityCount     int
	IndexedKeyCount int
}

// Engine owns one ResolutionConfiguration's worth of resolver state for the
// life of the process. The zero value is not usable; construct with New.
type Engine struct {
	mu  sync.RWMutex
	log *zap.Logger

	cfg    config.ResolutionConfiguration
	idx    *keyindex.Index
	forest *dsu.Forest
	store  *entitystore.Store
}

// New constructs an Engine for cfg with empty state.
func New(cfg config.ResolutionConfiguration, log *zap.Logger) *Engine {
	log = log.Named("resolver_engine")
	return &Engine{
		log:    log,
		cfg:    cfg,
		idx:    keyindex.New(),
		forest: dsu.New(),
		store:  entitystore.New(),
	}
}

// Resolve matches rec against the engine's state, fuses matched entities,
// and returns the surviving entity id. It holds the engine's exclusive
// lock for its entire duration; callers must not call Resolve recursively
// or from within a GetEntity/Stats call.
//
// A non-nil error is always a *resolver.InvariantError: an impossible
// internal state was detected. This is fatal — callers should treat it as a
// reason to abort the request with 500 and log loudly, not retry.
func (e *Engine) Resolve(rec record.Record) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, err := resolver.Resolve(e.cfg, e.idx, e.forest, e.store, rec, e.log)
	if err != nil {
		e.log.Error("internal invariant violated during resolve",
			zap.String("record_id", rec.ID()), zap.Error(err))
		return "", err
	}
	return id, nil
}

// GetEntity resolves id (current root or historical) to its current entity
// and returns a read-only, deterministically-serializable view. It holds
// the exclusive lock because FindRoot rewrites parent pointers.
func (e *Engine) GetEntity(id string) (EntityView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	root := id
	if e.forest.Has(id) {
		root = e.forest.FindRoot(id)
	}
	ent, ok := e.store.Get(root)
	if !ok {
		return EntityView{}, ErrEntityNotFound
	}
	return viewOf(ent), nil
}

// Stats returns current engine-wide counters.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		EntityCount:     e.store.Len(),
		IndexedKeyCount: e.idx.Len(),
	}
}

func viewOf(ent *entitystore.Entity) EntityView {
	recordIDs := make([]string, 0, len(ent.RecordIDs))
	for id := range ent.RecordIDs {
		recordIDs = append(recordIDs, id)
	}
	sort.Strings(recordIDs)

	attrs := make(map[string][]string, len(ent.Attrs))
	for name, set := range ent.Attrs {
		vals := make([]string, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		attrs[name] = vals
	}

	return EntityView{ID: ent.ID, RecordIDs: recordIDs, Attrs: attrs}
}
