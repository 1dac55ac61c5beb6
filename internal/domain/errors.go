package domain

import "errors"

// ErrUserAlreadyExists is returned when trying to create a user that already exists.
var ErrUserAlreadyExists = errors.New("user with this email already exists")

// ErrInvalidCredentials is returned for a bad email/password pair or an
// invalid or expired session token. Callers treat it as "anonymous", not as
// a session bootstrap failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmptyDisplayName is returned when a profile update would leave the
// mandatory display name empty.
var ErrEmptyDisplayName = errors.New("display name must not be empty")
