package domain

// Session is the snapshot of authentication state observed for a single
// request. It is owned by the shell; pages receive it read-only and never
// mutate it in place.
type Session struct {
	// User is nil for anonymous visitors.
	User *User

	// IsLoading is true while the session is still being resolved.
	IsLoading bool

	// Err holds a session bootstrap failure. When set, the shell renders the
	// full-page error state and nothing else.
	Err error
}

// Anonymous returns the session for a visitor with no authenticated user.
func Anonymous() Session {
	return Session{}
}

// Authenticated reports whether the session carries a signed-in user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// NeedsProfileSetup reports whether the signed-in user still has to complete
// the mandatory profile setup. It is derived from the user record on every
// call so it can never diverge from its source fields.
func (s Session) NeedsProfileSetup() bool {
	return s.User != nil && !s.User.HasDisplayName()
}
