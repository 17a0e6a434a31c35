package role

// Predicate reports whether a resolved State satisfies a route's role
// requirement. Using one parameterized gate with stock predicates keeps the
// three protected route families from drifting apart.
type Predicate func(State) bool

// AdminOnly admits administrators.
func AdminOnly(s State) bool { return s.IsAdmin }

// ModeratorOrAdmin admits moderators and administrators.
func ModeratorOrAdmin(s State) bool { return s.IsModerator || s.IsAdmin }

// StudentOnly admits students.
func StudentOnly(s State) bool { return s.IsStudent }

// Decision is the outcome of gating a request against a predicate.
type Decision int

const (
	// Wait means the identity or role is still resolving: show nothing and
	// do not redirect, or a legitimate user would be bounced mid-load.
	Wait Decision = iota
	// Grant means the protected content may be served.
	Grant
	// Redirect means the user is authenticated enough to be sent back to
	// the dashboard root rather than shown the protected content.
	Redirect
)

// Gate decides what to do with a request for protected content. The loading
// check runs first so an undefined role is never treated as a granted or
// denied capability.
func Gate(hasIdentity bool, st State, p Predicate) Decision {
	if st.IsLoading {
		return Wait
	}
	if hasIdentity && p(st) {
		return Grant
	}
	return Redirect
}
