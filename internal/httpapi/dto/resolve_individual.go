package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brightline-data/resolver/internal/resolve/keys"
	"github.com/brightline-data/resolver/internal/resolve/record"
)

// ResolveIndividualRequest is the JSON DTO for POST /resolve/individual.
// Every name attribute is optional; only Id is required.
type ResolveIndividualRequest struct {
	ID         string  `json:"id"`
	Prefix     *string `json:"prefix"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	Suffix     *string `json:"suffix"`
	BirthDate  *string `json:"birth_date"`
}

// Validate rejects malformed records at the boundary: a missing id, or any
// attribute containing the key-value separator U+00AC, which would make
// blocking keys ambiguous.
func (r *ResolveIndividualRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required")
	}
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"prefix", r.Prefix},
		{"first_name", r.FirstName},
		{"middle_name", r.MiddleName},
		{"last_name", r.LastName},
		{"suffix", r.Suffix},
		{"birth_date", r.BirthDate},
	} {
		if f.val != nil && strings.Contains(*f.val, keys.ValueSeparator) {
			return fmt.Errorf("%s must not contain %q", f.name, keys.ValueSeparator)
		}
	}
	return nil
}

// ToRecord converts a validated request into the resolver's Individual
// record type.
func (r *ResolveIndividualRequest) ToRecord() record.Individual {
	return record.Individual{
		RecordID:   r.ID,
		Prefix:     deref(r.Prefix),
		FirstName:  deref(r.FirstName),
		MiddleName: deref(r.MiddleName),
		LastName:   deref(r.LastName),
		Suffix:     deref(r.Suffix),
		BirthDate:  deref(r.BirthDate),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ResolveResponse is the JSON response for POST /resolve/individual.
type ResolveResponse struct {
	EntityID string `json:"entity_id"`
}
