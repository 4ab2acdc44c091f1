package label

import (
	"testing"

	"github.com/matsen/citelabel/internal/entry"
)

// miscEntry builds a "misc" entry with the given persons and fields,
// either of which may be nil.
func miscEntry(persons map[string][]entry.Person, fields map[string]string) entry.Entry {
	e := entry.New("misc")
	for role, ps := range persons {
		e.Persons[role] = ps
	}
	for name, v := range fields {
		e.Fields[name] = v
	}
	return e
}

func TestAuthorKey(t *testing.T) {
	author := map[string][]entry.Person{"author": {{Last: "Einstein"}}}
	keyField := map[string]string{"key": "demo-entry"}

	tests := []struct {
		name  string
		entry entry.Entry
		want  string
	}{
		{
			name:  "author wins over key field",
			entry: miscEntry(author, keyField),
			want:  "Einstein",
		},
		{
			name:  "key field when no author",
			entry: miscEntry(nil, keyField),
			want:  "demo-entry",
		},
		{
			name:  "key field is brace-normalized",
			entry: miscEntry(nil, map[string]string{"key": `\{demo\}`}),
			want:  "&#123;demo&#125;",
		},
		{
			name: "entry key as last resort",
			entry: func() entry.Entry {
				e := entry.New("misc")
				e.Key = "demo-key"
				return e
			}(),
			want: "demo-key",
		},
		{
			name:  "nothing available",
			entry: entry.New("misc"),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthorKey(tt.entry)
			if got != tt.want {
				t.Errorf("AuthorKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorEditorKey(t *testing.T) {
	author := []entry.Person{{Last: "Einstein"}}
	editor := []entry.Person{{Last: "Perkins"}}
	keyField := map[string]string{"key": "demo-entry"}

	tests := []struct {
		name  string
		entry entry.Entry
		want  string
	}{
		{
			name: "author wins over editor and key",
			entry: miscEntry(map[string][]entry.Person{
				"author": author,
				"editor": editor,
			}, keyField),
			want: "Einstein",
		},
		{
			name:  "editor when no author",
			entry: miscEntry(map[string][]entry.Person{"editor": editor}, keyField),
			want:  "Perkins",
		},
		{
			name:  "key field when no persons",
			entry: miscEntry(nil, keyField),
			want:  "demo-entry",
		},
		{
			name: "entry key as last resort",
			entry: func() entry.Entry {
				e := entry.New("misc")
				e.Key = "demo-key"
				return e
			}(),
			want: "demo-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthorEditorKey(tt.entry)
			if got != tt.want {
				t.Errorf("AuthorEditorKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyOrganization(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name: "key wins over organization",
			fields: map[string]string{
				"key":          "demo-entry",
				"organization": "Python Foundation",
			},
			want: "demo-entry",
		},
		{
			name:   "organization as-is",
			fields: map[string]string{"organization": "Python Foundation"},
			want:   "Python Foundation",
		},
		{
			name:   "leading The stripped",
			fields: map[string]string{"organization": "The Python Foundation"},
			want:   "Python Foundation",
		},
		{
			name:   "leading lowercase the stripped",
			fields: map[string]string{"organization": "the Python Foundation"},
			want:   "Python Foundation",
		},
		{
			name:   "Thereafter is not The",
			fields: map[string]string{"organization": "Thereafter Inc"},
			want:   "Thereafter Inc",
		},
		{
			name:   "nothing available",
			fields: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyOrganization(miscEntry(nil, tt.fields))
			if got != tt.want {
				t.Errorf("KeyOrganization() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditorKeyOrganization(t *testing.T) {
	tests := []struct {
		name  string
		entry entry.Entry
		want  string
	}{
		{
			name: "editor formatted",
			entry: miscEntry(map[string][]entry.Person{
				"editor": {{Last: "Perkins"}},
			}, nil),
			want: "Perkins",
		},
		{
			name: "editor wins over key field",
			entry: miscEntry(map[string][]entry.Person{
				"editor": {{Last: "Perkins"}},
			}, map[string]string{"key": "demo-entry"}),
			want: "Perkins",
		},
		{
			name:  "delegates to key-organization chain",
			entry: miscEntry(nil, map[string]string{"key": "demo-entry"}),
			want:  "demo-entry",
		},
		{
			name:  "falls through to organization",
			entry: miscEntry(nil, map[string]string{"organization": "The Python Foundation"}),
			want:  "Python Foundation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditorKeyOrganization(tt.entry)
			if got != tt.want {
				t.Errorf("EditorKeyOrganization() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorKeyOrganization(t *testing.T) {
	tests := []struct {
		name  string
		entry entry.Entry
		want  string
	}{
		{
			name: "author formatted",
			entry: miscEntry(map[string][]entry.Person{
				"author": {{Last: "Einstein"}},
			}, nil),
			want: "Einstein",
		},
		{
			name: "multiple authors condensed",
			entry: miscEntry(map[string][]entry.Person{
				"author": {{Last: "Curie"}, {Last: "Einstein"}, {Last: "Nobel"}},
			}, map[string]string{"key": "demo-entry"}),
			want: "Curie et al.",
		},
		{
			name:  "delegates to key-organization chain",
			entry: miscEntry(nil, map[string]string{"key": "demo-entry"}),
			want:  "demo-entry",
		},
		{
			name:  "falls through to organization",
			entry: miscEntry(nil, map[string]string{"organization": "Python Foundation"}),
			want:  "Python Foundation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthorKeyOrganization(tt.entry)
			if got != tt.want {
				t.Errorf("AuthorKeyOrganization() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestResolvers_ZeroValueEntry checks that resolvers tolerate an Entry
// built without the constructor (nil maps).
func TestResolvers_ZeroValueEntry(t *testing.T) {
	var e entry.Entry
	resolvers := map[string]func(entry.Entry) string{
		"AuthorKey":             AuthorKey,
		"AuthorEditorKey":       AuthorEditorKey,
		"KeyOrganization":       KeyOrganization,
		"EditorKeyOrganization": EditorKeyOrganization,
		"AuthorKeyOrganization": AuthorKeyOrganization,
	}
	for name, f := range resolvers {
		if got := f(e); got != "" {
			t.Errorf("%s(zero entry) = %q, want empty", name, got)
		}
	}
}
