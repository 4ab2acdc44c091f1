package label

import (
	"fmt"
	"sort"

	"github.com/matsen/citelabel/internal/entry"
)

// Style is a named label resolver. Every style takes a complete entry and
// returns a plain label string, empty when no data source is available.
type Style func(e entry.Entry) string

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "author-editor-key"

// styles maps style names to resolvers. The names mirror the fallback
// chain each resolver walks.
var styles = map[string]Style{
	"author-key":              AuthorKey,
	"author-editor-key":       AuthorEditorKey,
	"key-organization":        KeyOrganization,
	"editor-key-organization": EditorKeyOrganization,
	"author-key-organization": AuthorKeyOrganization,
}

// StyleByName returns the named style.
func StyleByName(name string) (Style, error) {
	s, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("unknown label style %q (known styles: %v)", name, StyleNames())
	}
	return s, nil
}

// StyleNames returns all registered style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
