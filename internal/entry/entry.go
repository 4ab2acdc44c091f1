// Package entry defines the core domain types for bibliography entries.
package entry

// Person represents a structured name with optional parts.
//
// Name parsing is the responsibility of the upstream bibliography model;
// Person values arrive already split. Prelast is the "von"-style component
// that sorts with the last name — it is carried as-is, never re-derived.
type Person struct {
	First   string `json:"first,omitempty"`   // Given name(s)
	Prelast string `json:"prelast,omitempty"` // Pre-last component ("von", "van der")
	Last    string `json:"last,omitempty"`    // Family name
	Suffix  string `json:"suffix,omitempty"`  // Generational suffix ("Jr.")
}

// Entry represents a single bibliographic record.
type Entry struct {
	// Identity
	Type string `json:"type"`          // Entry type tag (article, book, misc, ...)
	Key  string `json:"key,omitempty"` // Citation key

	// Metadata
	Persons map[string][]Person `json:"persons"` // Role ("author", "editor") to ordered name list
	Fields  map[string]string   `json:"fields"`  // Field name to value
}

// New creates an Entry of the given type with empty (non-nil) person and
// field maps. A missing role or field reads as "not found", never as a nil
// map dereference.
func New(entryType string) Entry {
	return Entry{
		Type:    entryType,
		Persons: map[string][]Person{},
		Fields:  map[string]string{},
	}
}

// PersonsFor returns the persons listed under a role, in source order.
// Returns nil for an unknown role.
func (e Entry) PersonsFor(role string) []Person {
	if e.Persons == nil {
		return nil
	}
	return e.Persons[role]
}

// Field returns a field value and whether the field is present.
func (e Entry) Field(name string) (string, bool) {
	if e.Fields == nil {
		return "", false
	}
	v, ok := e.Fields[name]
	return v, ok
}
