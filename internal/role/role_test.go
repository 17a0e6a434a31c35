package role

import "testing"

func TestFromStringIsTotal(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"admin", Admin},
		{"Admin", Admin},
		{"  ADMIN  ", Admin},
		{"moderator", Moderator},
		{"student", Student},
		{"", Student},
		{"superuser", Student},
		{"mod", Student},
	}
	for _, c := range cases {
		if got := FromString(c.raw); got != c.want {
			t.Errorf("FromString(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestResolvedBooleansAreMutuallyExclusive(t *testing.T) {
	for _, r := range []Role{Student, Moderator, Admin} {
		st := Resolved(r)
		n := 0
		for _, b := range []bool{st.IsAdmin, st.IsModerator, st.IsStudent} {
			if b {
				n++
			}
		}
		if n != 1 {
			t.Errorf("Resolved(%q): %d capability booleans set, want exactly 1", r, n)
		}
		if st.IsStudent != (!st.IsAdmin && !st.IsModerator) {
			t.Errorf("Resolved(%q): IsStudent must hold iff neither admin nor moderator", r)
		}
	}
}

func TestLoadingGrantsNothing(t *testing.T) {
	st := Loading()
	if !st.IsLoading {
		t.Fatal("Loading() must set IsLoading")
	}
	if st.IsAdmin || st.IsModerator || st.IsStudent {
		t.Fatal("loading state must not grant any capability")
	}
}

func TestFailedFailsClosedToStudent(t *testing.T) {
	st := Failed()
	if !st.IsError {
		t.Fatal("Failed() must record the error")
	}
	if st.IsAdmin || st.IsModerator || !st.IsStudent {
		t.Fatalf("Failed() = %+v, want student-only capabilities", st)
	}
}

func TestGate(t *testing.T) {
	cases := []struct {
		name        string
		hasIdentity bool
		st          State
		pred        Predicate
		want        Decision
	}{
		{"loading waits even for admin predicate", true, Loading(), AdminOnly, Wait},
		{"loading waits without identity", false, Loading(), StudentOnly, Wait},
		{"admin granted on admin route", true, Resolved(Admin), AdminOnly, Grant},
		{"admin granted on moderator route", true, Resolved(Admin), ModeratorOrAdmin, Grant},
		{"admin redirected off student route", true, Resolved(Admin), StudentOnly, Redirect},
		{"moderator granted on moderator route", true, Resolved(Moderator), ModeratorOrAdmin, Grant},
		{"moderator redirected off admin route", true, Resolved(Moderator), AdminOnly, Redirect},
		{"student granted on student route", true, Resolved(Student), StudentOnly, Grant},
		{"student redirected off admin route", true, Resolved(Student), AdminOnly, Redirect},
		{"no identity redirected despite matching state", false, Resolved(Student), StudentOnly, Redirect},
		{"failed lookup still reaches student routes", true, Failed(), StudentOnly, Grant},
		{"failed lookup never reaches admin routes", true, Failed(), AdminOnly, Redirect},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Gate(c.hasIdentity, c.st, c.pred); got != c.want {
				t.Fatalf("Gate = %v, want %v", got, c.want)
			}
		})
	}
}
