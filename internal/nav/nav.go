// Package nav composes the dashboard sidebar from a resolved role state.
// It is a pure function of role.State: section visibility comes straight
// from the capability booleans and no role logic is re-derived here.
package nav

import "github.com/scholarstream/api/internal/role"

// Entry is one sidebar link.
type Entry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Section groups entries under a role heading. The common section has an
// empty title and is always present.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

var commonEntries = []Entry{
	{Label: "Overview", Path: "/dashboard", Icon: "home"},
	{Label: "Profile", Path: "/dashboard/profile", Icon: "user"},
	{Label: "All Scholarships", Path: "/scholarships", Icon: "academic-cap"},
}

var adminEntries = []Entry{
	{Label: "Add Scholarship", Path: "/dashboard/add-scholarship", Icon: "plus"},
	{Label: "Manage Scholarships", Path: "/dashboard/manage-scholarships", Icon: "clipboard"},
	{Label: "Manage Users", Path: "/dashboard/manage-users", Icon: "users"},
	{Label: "Analytics", Path: "/dashboard/analytics", Icon: "chart-bar"},
}

var moderatorEntries = []Entry{
	{Label: "Manage Applications", Path: "/dashboard/manage-applications", Icon: "inbox"},
	{Label: "All Reviews", Path: "/dashboard/all-reviews", Icon: "star"},
}

var studentEntries = []Entry{
	{Label: "My Applications", Path: "/dashboard/my-applications", Icon: "document"},
	{Label: "My Reviews", Path: "/dashboard/my-reviews", Icon: "star"},
}

// Compose returns the sidebar sections for a role state in a fixed order:
// common, then Admin, Moderator and Student sections when the corresponding
// capability is held. A loading state yields only the common section, so
// nothing privileged flashes while the role resolves. Entries are copied so
// callers cannot mutate the templates.
func Compose(st role.State) []Section {
	out := []Section{{Title: "", Entries: clone(commonEntries)}}
	if st.IsAdmin {
		out = append(out, Section{Title: "Admin", Entries: clone(adminEntries)})
	}
	if st.IsModerator {
		out = append(out, Section{Title: "Moderator", Entries: clone(moderatorEntries)})
	}
	if st.IsStudent {
		out = append(out, Section{Title: "Student", Entries: clone(studentEntries)})
	}
	return out
}

func clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
