package domain

import (
	"context"
	"strings"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// User represents an account holder in the application domain.
type User struct {
	ID          *surrealmodels.RecordID `json:"id,omitempty"`
	Email       string                  `json:"email"`
	Password    string                  `json:"password,omitempty"`
	DisplayName *string                 `json:"display_name,omitempty"`
	AvatarURL   *string                 `json:"avatar_url,omitempty"`
}

// DisplayNameOrEmail returns the user's display name, falling back to the
// email address for accounts that have not completed profile setup.
func (u *User) DisplayNameOrEmail() string {
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != "" {
		return *u.DisplayName
	}
	return u.Email
}

// HasDisplayName reports whether the user has a non-empty display name.
func (u *User) HasDisplayName() bool {
	return u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != ""
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched by the update.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	SignUp(ctx context.Context, user *User, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id *surrealmodels.RecordID, update ProfileUpdate) (*User, error)
}
