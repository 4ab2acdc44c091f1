package label

import (
	"reflect"
	"testing"

	"github.com/matsen/citelabel/internal/entry"
)

func TestStyleByName(t *testing.T) {
	e := entry.New("misc")
	e.Persons["author"] = []entry.Person{{Last: "Einstein"}}

	s, err := StyleByName("author-key")
	if err != nil {
		t.Fatalf("StyleByName(author-key) error: %v", err)
	}
	if got := s(e); got != "Einstein" {
		t.Errorf("author-key style = %q, want %q", got, "Einstein")
	}

	if _, err := StyleByName("nope"); err == nil {
		t.Error("StyleByName(nope) should return an error")
	}
}

func TestStyleNames(t *testing.T) {
	want := []string{
		"author-editor-key",
		"author-key",
		"author-key-organization",
		"editor-key-organization",
		"key-organization",
	}
	if got := StyleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("StyleNames() = %v, want %v", got, want)
	}
}

func TestDefaultStyleRegistered(t *testing.T) {
	if _, err := StyleByName(DefaultStyle); err != nil {
		t.Errorf("default style %q not registered: %v", DefaultStyle, err)
	}
}
