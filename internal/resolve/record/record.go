// Package record defines the typed record schema(s) the resolver accepts.
// Only "individual" exists today; additional record kinds are added here
// without touching the resolver core, which depends only on the Record
// interface.
package record

// Record is an immutable input to the resolver: a caller-supplied unique id
// plus a fixed schema of optional string attributes.
type Record interface {
	// ID returns the caller-supplied record id. Never empty for a valid record.
	ID() string
	// RawAttrs returns the record's declared attribute names mapped to their
	// raw (un-normalized) values. Absent attributes are omitted or mapped to
	// the empty string; both mean "no value".
	RawAttrs() map[string]string
}

// IndividualSchema is the ordered attribute set for the "individual" record
// kind.
var IndividualSchema = []string{
	"prefix", "first_name", "middle_name", "last_name", "suffix", "birth_date",
}

// Individual is a person record: name parts plus a birth date.
type Individual struct {
	RecordID   string
	Prefix     string
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	BirthDate  string
}

func (i Individual) ID() string { return i.RecordID }

func (i Individual) RawAttrs() map[string]string {
	return map[string]string{
		"prefix":      i.Prefix,
		"first_name":  i.FirstName,
		"middle_name": i.MiddleName,
		"last_name":   i.LastName,
		"suffix":      i.Suffix,
		"birth_date":  i.BirthDate,
	}
}
