// Package label derives short label strings for bibliography entries, as
// used to identify works in author-year style reference lists.
//
// A label comes from the best available data source on the entry: named
// persons beat an explicit disambiguation key field, which beats the
// entry's own citation key, which beats an organization name. Each public
// resolver encodes one such ranking as an ordered rule list; the first
// rule whose source is present produces the label. Absence of data falls
// through to the next rule, never to an error. If every source is absent
// the resolver returns "" — a populated source never yields an empty
// label, so the empty string unambiguously means "no source".
//
// All functions are pure and safe for concurrent use.
package label

import (
	"strings"

	"github.com/matsen/citelabel/internal/entry"
)

// rule pairs a source-availability predicate with the producer that turns
// the source into a label. Keeping the ranking as data (rather than nested
// conditionals) makes each chain's policy visible at a glance.
type rule struct {
	applies func(entry.Entry) bool
	produce func(entry.Entry) string
}

// resolve evaluates rules in rank order, first match wins.
func resolve(e entry.Entry, rules []rule) string {
	for _, r := range rules {
		if r.applies(e) {
			return r.produce(e)
		}
	}
	return ""
}

func hasPersons(role string) func(entry.Entry) bool {
	return func(e entry.Entry) bool { return len(e.PersonsFor(role)) > 0 }
}

func personNames(role string) func(entry.Entry) string {
	return func(e entry.Entry) string { return FormatNames(e.PersonsFor(role)) }
}

func hasField(name string) func(entry.Entry) bool {
	return func(e entry.Entry) bool {
		_, ok := e.Field(name)
		return ok
	}
}

// keyFieldRule produces the "key" field run through brace normalization.
// The key field is free text and may carry grouping braces.
var keyFieldRule = rule{
	applies: hasField("key"),
	produce: func(e entry.Entry) string {
		v, _ := e.Field("key")
		return NormalizeBraces(v)
	},
}

// entryKeyRule produces the entry's own citation key, as-is.
var entryKeyRule = rule{
	applies: func(e entry.Entry) bool { return e.Key != "" },
	produce: func(e entry.Entry) string { return e.Key },
}

// AuthorKey labels an entry by its authors, falling back to the "key"
// field and then the citation key.
func AuthorKey(e entry.Entry) string {
	return resolve(e, []rule{
		{hasPersons("author"), personNames("author")},
		keyFieldRule,
		entryKeyRule,
	})
}

// AuthorEditorKey labels an entry by its authors, then its editors, then
// the same key fallbacks as AuthorKey.
func AuthorEditorKey(e entry.Entry) string {
	return resolve(e, []rule{
		{hasPersons("author"), personNames("author")},
		{hasPersons("editor"), personNames("editor")},
		keyFieldRule,
		entryKeyRule,
	})
}

// KeyOrganization labels an entry by its "key" field, falling back to the
// "organization" field with a leading "The "/"the " stripped. Used for
// institutional authorship where no person is attributed.
func KeyOrganization(e entry.Entry) string {
	return resolve(e, []rule{
		{hasField("key"), func(e entry.Entry) string {
			v, _ := e.Field("key")
			return v
		}},
		{hasField("organization"), func(e entry.Entry) string {
			v, _ := e.Field("organization")
			return stripTheArticle(v)
		}},
	})
}

// always accepts any entry; used for rules that delegate to another chain.
func always(entry.Entry) bool { return true }

// EditorKeyOrganization labels an entry by its editors, delegating to
// KeyOrganization when none are listed.
func EditorKeyOrganization(e entry.Entry) string {
	return resolve(e, []rule{
		{hasPersons("editor"), personNames("editor")},
		{always, KeyOrganization},
	})
}

// AuthorKeyOrganization labels an entry by its authors, delegating to
// KeyOrganization when none are listed.
func AuthorKeyOrganization(e entry.Entry) string {
	return resolve(e, []rule{
		{hasPersons("author"), personNames("author")},
		{always, KeyOrganization},
	})
}

// stripTheArticle removes a leading "The " or "the " word. Only the exact
// space-bounded word is removed, so "Thereafter Inc" is left alone.
func stripTheArticle(s string) string {
	if strings.HasPrefix(s, "The ") || strings.HasPrefix(s, "the ") {
		return s[len("The "):]
	}
	return s
}
