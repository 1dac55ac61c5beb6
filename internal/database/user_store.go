package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/psalmos/web/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealUserStore encapsulates database operations for users using SurrealDB.
// Sign-up/sign-in/authenticate lean on the driver's record-access methods; the
// rest are plain queries.
type SurrealUserStore struct {
	db     *surrealdb.DB
	ns     string
	dbName string
}

// NewSurrealUserStore creates a new SurrealUserStore.
func NewSurrealUserStore(db *surrealdb.DB, ns, dbName string) *SurrealUserStore {
	return &SurrealUserStore{db: db, ns: ns, dbName: dbName}
}

// FindUserByEmail queries for a single user by their email address.
func (s *SurrealUserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT * FROM user WHERE email = $email"
	params := map[string]any{"email": email}

	user, err := QueryOne[domain.User](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	return user, nil
}

// SignUp registers a new account through the database's access method and
// returns a session token.
func (s *SurrealUserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	// Field names match what the record-access definition expects.
	token, err := s.db.SignUp(ctx, map[string]interface{}{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       "account",
		"email":    user.Email,
		"password": password,
	})

	if err != nil && strings.Contains(err.Error(), "already exists") {
		return "", domain.ErrUserAlreadyExists
	}
	if err != nil {
		return "", fmt.Errorf("sign up failed: %w", err)
	}

	// The token does not carry the record ID; fetch it so callers get a
	// fully populated user.
	created, findErr := s.FindUserByEmail(ctx, user.Email)
	if findErr != nil {
		return "", fmt.Errorf("failed to fetch user after sign-up: %w", findErr)
	}
	if created != nil {
		user.ID = created.ID
	}

	slog.Info("Signed up user", "email", user.Email)
	return token, nil
}

// SignIn authenticates an email/password pair and returns a session token.
func (s *SurrealUserStore) SignIn(ctx context.Context, email, password string) (string, error) {
	token, err := s.db.SignIn(ctx, map[string]interface{}{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       "account",
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	slog.Info("Signed in user", "email", email)
	return token, nil
}

// Authenticate validates a session token and returns the associated user.
func (s *SurrealUserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	// Authenticate sets the auth context for subsequent queries on this
	// connection; a failure means the token is invalid or expired.
	if err := s.db.Authenticate(ctx, token); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := Query[domain.User](ctx, s.db, "SELECT * FROM $auth", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	if len(users) == 0 || users[0].ID == nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := &users[0]
	user.Password = ""
	return user, nil
}

// UpdateProfile merges the non-nil profile fields into the user record and
// returns the updated user. An explicitly empty display name is rejected;
// the field is mandatory once set.
func (s *SurrealUserStore) UpdateProfile(ctx context.Context, id *surrealmodels.RecordID, update domain.ProfileUpdate) (*domain.User, error) {
	if id == nil {
		return nil, NewDBError(ErrInvalidInput, "user ID is required for profile update")
	}

	data := map[string]any{}
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, domain.ErrEmptyDisplayName
		}
		data["display_name"] = name
	}
	if update.AvatarURL != nil {
		data["avatar_url"] = *update.AvatarURL
	}
	if len(data) == 0 {
		return nil, NewDBError(ErrInvalidInput, "profile update contains no fields")
	}

	query := fmt.Sprintf("UPDATE %s MERGE $data", id.String())
	user, err := QueryOne[domain.User](ctx, s.db, query, map[string]any{"data": data})
	if err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}
	if user == nil {
		return nil, NewDBError(ErrNotFound, "no user record to update")
	}

	user.Password = ""
	return user, nil
}
