// Package config holds the resolver's blocking-key configuration.
package config

import "strings"

// Pattern is an ordered list of attribute names whose non-empty normalized
// values combine into one blocking key.
type Pattern []string

// Name is the pattern's attribute names joined by "_", used as the
// blocking-key's key-name. Key-names are informational only; the key index
// keys on key-values, never key-names, so two patterns that happen to share
// a name never collide.
func (p Pattern) Name() string {
	return strings.Join(p, "_")
}

// ResolutionConfiguration is the fixed, process-lifetime configuration for
// one record kind.
type ResolutionConfiguration struct {
	EntityType string
	Keys       []Pattern
}

// Individual is the blocking configuration for person records: two people
// match if they share a first name, last name and birth date; a middle
// name, last name and birth date; or a first name and birth date alone.
var Individual = ResolutionConfiguration{
	EntityType: "individual",
	Keys: []Pattern{
		{"first_name", "last_name", "birth_date"},
		{"middle_name", "last_name", "birth_date"},
		{"first_name", "birth_date"},
	},
}
