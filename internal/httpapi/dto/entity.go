package dto

import "github.com/brightline-data/resolver/internal/resolve/engine"

// EntityResponse is the JSON response for GET /entity/{id}.
type EntityResponse struct {
	ID        string              `json:"id"`
	RecordIDs []string            `json:"record_ids"`
	Attrs     map[string][]string `json:"attrs"`
}

// FromEntityView adapts an engine.EntityView (already sorted) to the wire
// shape.
func FromEntityView(v engine.EntityView) EntityResponse {
	return EntityResponse{ID: v.ID, RecordIDs: v.RecordIDs, Attrs: v.Attrs}
}

// StatsResponse is the JSON response for GET /stats.
type StatsResponse struct {
	Entities    int `json:"entities"`
	IndexedKeys int `json:"indexed_keys"`
}

// FromStats adapts an engine.Stats to the wire shape.
func FromStats(s engine.Stats) StatsResponse {
	return StatsResponse{Entities: s.EntityCount, IndexedKeys: s.IndexedKeyCount}
}
