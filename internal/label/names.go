package label

import (
	"github.com/matsen/citelabel/internal/entry"
)

// FormatNames condenses an ordered author or editor list into a label
// fragment:
//
//   - one person: pre-last and last parts concatenated and stripped to
//     letters and digits ("A." + "Einstein" → "AEinstein")
//   - two persons: "Last1 and Last2 " (trailing space, names as-is)
//   - three or more: "Last1 et al."
//
// The list order is the source order; the "first" person is whatever the
// entry lists first. Callers must pass at least one person. A person
// without a last name contributes an empty string for its slot.
func FormatNames(persons []entry.Person) string {
	switch len(persons) {
	case 1:
		return StripNonAlphanumeric([]string{persons[0].Prelast, persons[0].Last})
	case 2:
		return persons[0].Last + " and " + persons[1].Last + " "
	default:
		return persons[0].Last + " et al."
	}
}
