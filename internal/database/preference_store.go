package database

import (
	"context"
	"fmt"
	"time"

	"github.com/psalmos/web/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Collection names for the per-user preference records.
const (
	tableProfiles      = "user_profile"
	tableNotifications = "notification_prefs"
	tablePrivacy       = "privacy_prefs"
)

// PreferenceStore implements domain.PreferenceRepository on SurrealDB.
//
// Saves follow the read-then-branch pattern: query the owner's existing
// record, update the first match, otherwise create. Two concurrent saves for
// the same user can both take the create branch; that race is accepted and
// resolves as last-writer-wins.
type PreferenceStore struct {
	profiles      Client[domain.ProfileRecord]
	notifications Client[domain.NotificationPreferences]
	privacy       Client[domain.PrivacyPreferences]
}

// NewPreferenceStore creates a PreferenceStore over the given connection.
func NewPreferenceStore(db *surrealdb.DB) *PreferenceStore {
	return &PreferenceStore{
		profiles:      NewClient[domain.ProfileRecord](db),
		notifications: NewClient[domain.NotificationPreferences](db),
		privacy:       NewClient[domain.PrivacyPreferences](db),
	}
}

// NewPreferenceStoreWithClients wires explicit clients; used by tests.
func NewPreferenceStoreWithClients(
	profiles Client[domain.ProfileRecord],
	notifications Client[domain.NotificationPreferences],
	privacy Client[domain.PrivacyPreferences],
) *PreferenceStore {
	return &PreferenceStore{profiles: profiles, notifications: notifications, privacy: privacy}
}

func ownerQuery(table string) string {
	return fmt.Sprintf("SELECT * FROM %s WHERE user_id = $user", table)
}

func now() *surrealmodels.CustomDateTime {
	return &surrealmodels.CustomDateTime{Time: time.Now().UTC()}
}

// GetProfile returns the user's profile record, or nil when none exists yet.
func (s *PreferenceStore) GetProfile(ctx context.Context, userID *surrealmodels.RecordID) (*domain.ProfileRecord, error) {
	if userID == nil {
		return nil, NewDBError(ErrInvalidInput, "user ID is required")
	}
	return s.profiles.QueryOne(ctx, ownerQuery(tableProfiles), map[string]any{"user": userID})
}

// SaveProfile updates the user's existing profile record or creates one.
func (s *PreferenceStore) SaveProfile(ctx context.Context, record *domain.ProfileRecord) (*domain.ProfileRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, NewDBError(ErrInvalidInput, err.Error())
	}

	existing, err := s.profiles.QueryOne(ctx, ownerQuery(tableProfiles), map[string]any{"user": record.UserID})
	if err != nil {
		return nil, err
	}

	record.UpdatedAt = now()
	if existing != nil && existing.ID != nil {
		return s.profiles.Update(ctx, existing.ID.String(), record)
	}
	record.CreatedAt = record.UpdatedAt
	return s.profiles.Create(ctx, tableProfiles, record)
}

// GetNotifications returns the user's notification flags, or nil when the
// user has never saved them.
func (s *PreferenceStore) GetNotifications(ctx context.Context, userID *surrealmodels.RecordID) (*domain.NotificationPreferences, error) {
	if userID == nil {
		return nil, NewDBError(ErrInvalidInput, "user ID is required")
	}
	return s.notifications.QueryOne(ctx, ownerQuery(tableNotifications), map[string]any{"user": userID})
}

// SaveNotifications updates the user's existing notification record or
// creates one.
func (s *PreferenceStore) SaveNotifications(ctx context.Context, record *domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	if err := record.Validate(); err != nil {
		return nil, NewDBError(ErrInvalidInput, err.Error())
	}

	existing, err := s.notifications.QueryOne(ctx, ownerQuery(tableNotifications), map[string]any{"user": record.UserID})
	if err != nil {
		return nil, err
	}

	record.UpdatedAt = now()
	if existing != nil && existing.ID != nil {
		return s.notifications.Update(ctx, existing.ID.String(), record)
	}
	record.CreatedAt = record.UpdatedAt
	return s.notifications.Create(ctx, tableNotifications, record)
}

// GetPrivacy returns the user's privacy flags, or nil when the user has
// never saved them.
func (s *PreferenceStore) GetPrivacy(ctx context.Context, userID *surrealmodels.RecordID) (*domain.PrivacyPreferences, error) {
	if userID == nil {
		return nil, NewDBError(ErrInvalidInput, "user ID is required")
	}
	return s.privacy.QueryOne(ctx, ownerQuery(tablePrivacy), map[string]any{"user": userID})
}

// SavePrivacy updates the user's existing privacy record or creates one.
func (s *PreferenceStore) SavePrivacy(ctx context.Context, record *domain.PrivacyPreferences) (*domain.PrivacyPreferences, error) {
	if err := record.Validate(); err != nil {
		return nil, NewDBError(ErrInvalidInput, err.Error())
	}

	existing, err := s.privacy.QueryOne(ctx, ownerQuery(tablePrivacy), map[string]any{"user": record.UserID})
	if err != nil {
		return nil, err
	}

	record.UpdatedAt = now()
	if existing != nil && existing.ID != nil {
		return s.privacy.Update(ctx, existing.ID.String(), record)
	}
	record.CreatedAt = record.UpdatedAt
	return s.privacy.Create(ctx, tablePrivacy, record)
}
