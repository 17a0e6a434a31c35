package nav

import (
	"reflect"
	"testing"

	"github.com/scholarstream/api/internal/role"
)

func titles(sections []Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Title)
	}
	return out
}

func TestComposeSectionsPerRole(t *testing.T) {
	cases := []struct {
		name string
		st   role.State
		want []string
	}{
		{"loading shows only common", role.Loading(), []string{""}},
		{"student", role.Resolved(role.Student), []string{"", "Student"}},
		{"moderator", role.Resolved(role.Moderator), []string{"", "Moderator"}},
		{"admin", role.Resolved(role.Admin), []string{"", "Admin"}},
		{"failed lookup falls back to student menu", role.Failed(), []string{"", "Student"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := titles(Compose(c.st)); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("sections %v, want %v", got, c.want)
			}
		})
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	st := role.Resolved(role.Admin)
	first := Compose(st)
	second := Compose(st)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same state produced different sidebars")
	}
}

func TestComposeCopiesEntries(t *testing.T) {
	first := Compose(role.Resolved(role.Admin))
	first[1].Entries[0].Label = "tampered"
	second := Compose(role.Resolved(role.Admin))
	if second[1].Entries[0].Label == "tampered" {
		t.Fatal("Compose leaked shared entry slices")
	}
}

func TestCommonSectionAlwaysFirst(t *testing.T) {
	for _, st := range []role.State{role.Loading(), role.Resolved(role.Admin), role.Resolved(role.Student)} {
		got := Compose(st)
		if len(got) == 0 || got[0].Title != "" {
			t.Fatalf("common section missing or misplaced for %+v", st)
		}
		if len(got[0].Entries) == 0 {
			t.Fatal("common section must not be empty")
		}
	}
}
