// Package keys builds blocking keys from records and entities per a
// ResolutionConfiguration's patterns.
package keys

import (
	"strings"

	"github.com/brightline-data/resolver/internal/resolve/config"
	"github.com/brightline-data/resolver/internal/resolve/normalize"
	"github.com/brightline-data/resolver/internal/resolve/record"
)

// ValueSeparator is the single code point joining normalized attribute
// values inside a key-value. Attribute values must never contain it; the
// HTTP boundary rejects inputs that do.
const ValueSeparator = "¬" // ¬

// KeyValue is one blocking key: a (key-name, key-value) pair.
type KeyValue struct {
	Name  string
	Value string
}

// KeysForRecord returns, for each pattern whose every attribute has a
// non-empty normalized value on rec, one (name, value) pair. A record
// yields at most one key per pattern.
func KeysForRecord(rec record.Record, patterns []config.Pattern) map[string]string {
	raw := rec.RawAttrs()
	out := make(map[string]string, len(patterns))
	for _, p := range patterns {
		values := make([]string, 0, len(p))
		ok := true
		for _, attr := range p {
			norm, present := normalize.Normalize(raw[attr])
			if !present {
				ok = false
				break
			}
			values = append(values, norm)
		}
		if !ok {
			continue
		}
		out[p.Name()] = strings.Join(values, ValueSeparator)
	}
	return out
}

// KeysForEntity returns the full multiset of composite key-values an
// entity's fused attribute value-sets emit: for every pattern whose every
// attribute has at least one value in attrs, the Cartesian product of the
// per-attribute value-sets, one KeyValue per tuple.
func KeysForEntity(attrs map[string]map[string]struct{}, patterns []config.Pattern) []KeyValue {
	var out []KeyValue
	for _, p := range patterns {
		valueSets := make([][]string, len(p))
		complete := true
		for i, attr := range p {
			set, ok := attrs[attr]
			if !ok || len(set) == 0 {
				complete = false
				break
			}
			vals := make([]string, 0, len(set))
			for v := range set {
				vals = append(vals, v)
			}
			valueSets[i] = vals
		}
		if !complete {
			continue
		}
		name := p.Name()
		for _, combo := range product(valueSets) {
			out = append(out, KeyValue{Name: name, Value: strings.Join(combo, ValueSeparator)})
		}
	}
	return out
}

// product enumerates the Cartesian product of sets. Per-set iteration order
// is map order (unspecified); callers must treat the result as a set of
// tuples, never rely on emission order.
func product(sets [][]string) [][]string {
	if len(sets) == 0 {
		return nil
	}
	result := [][]string{{}}
	for _, set := range sets {
		var next [][]string
		for _, combo := range result {
			for _, v := range set {
				extended := make([]string, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, v)
				next = append(next, extended)
			}
		}
		result = next
	}
	return result
}
