// Package role implements the role model shared by every dashboard surface:
// a closed set of roles, a derived capability state, the access-gate
// decision, and a resolver that looks roles up from the user store with a
// short positive cache. Everything that gates UI or routes consumes the
// State produced here instead of re-deriving role logic.
package role

import "strings"

// Role is the closed set of roles a user can hold. Student is the least
// privileged and the fallback for anything the mapping does not recognize.
type Role string

const (
	Student   Role = "student"
	Moderator Role = "moderator"
	Admin     Role = "admin"
)

// FromString maps a raw backend role value onto the closed set. The mapping
// is total: empty or unrecognized values become Student, so no caller ever
// sees a role outside the three constants.
func FromString(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return Admin
	case "moderator":
		return Moderator
	default:
		return Student
	}
}

// State is the derived capability classification handed to guards and the
// navigation composer. Once IsLoading is false, exactly one of IsAdmin,
// IsModerator and IsStudent is true. While IsLoading is true all three are
// false: an unresolved role grants nothing.
type State struct {
	Role        Role
	IsAdmin     bool
	IsModerator bool
	IsStudent   bool
	IsLoading   bool
	IsError     bool
}

// Loading returns the conservative pre-resolution state: no role, no
// capabilities.
func Loading() State {
	return State{IsLoading: true}
}

// Resolved derives the capability booleans from a role. This is the only
// place the booleans are computed.
func Resolved(r Role) State {
	return State{
		Role:        r,
		IsAdmin:     r == Admin,
		IsModerator: r == Moderator,
		IsStudent:   r != Admin && r != Moderator,
	}
}

// Failed is the fail-closed state used when the role lookup errors: the
// user is treated as a Student and the error is recorded for observability
// without ever being surfaced to gating callers.
func Failed() State {
	st := Resolved(Student)
	st.IsError = true
	return st
}
