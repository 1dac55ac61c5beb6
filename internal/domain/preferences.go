package domain

import (
	"context"

	"github.com/go-playground/validator/v10"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// ProfileRecord holds the extended profile details a user maintains on the
// settings page. One logical record exists per user.
type ProfileRecord struct {
	ID          *surrealmodels.RecordID       `json:"id,omitempty"`
	UserID      *surrealmodels.RecordID       `json:"user_id,omitempty" validate:"required"`
	DisplayName string                        `json:"display_name" validate:"required,max=120"`
	Bio         string                        `json:"bio" validate:"max=2000"`
	Company     string                        `json:"company" validate:"max=200"`
	Website     string                        `json:"website" validate:"omitempty,url,max=500"`
	AvatarURL   string                        `json:"avatar_url" validate:"omitempty,max=1000"`
	CreatedAt   *surrealmodels.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt   *surrealmodels.CustomDateTime `json:"updated_at,omitempty"`
}

// Validate runs validation checks on the record using the defined tags.
func (p *ProfileRecord) Validate() error {
	return validatorInstance.Struct(p)
}

// NotificationPreferences holds the per-user notification flags. One logical
// record exists per user.
type NotificationPreferences struct {
	ID               *surrealmodels.RecordID       `json:"id,omitempty"`
	UserID           *surrealmodels.RecordID       `json:"user_id,omitempty" validate:"required"`
	EmailUpdates     bool                          `json:"email_updates"`
	NewReleases      bool                          `json:"new_releases"`
	LicenseReminders bool                          `json:"license_reminders"`
	MarketingEmails  bool                          `json:"marketing_emails"`
	CreatedAt        *surrealmodels.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt        *surrealmodels.CustomDateTime `json:"updated_at,omitempty"`
}

// Validate runs validation checks on the record using the defined tags.
func (p *NotificationPreferences) Validate() error {
	return validatorInstance.Struct(p)
}

// DefaultNotificationPreferences returns the flags applied before a user has
// saved anything.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EmailUpdates: true,
		NewReleases:  true,
	}
}

// PrivacyPreferences holds the per-user privacy flags. One logical record
// exists per user.
type PrivacyPreferences struct {
	ID                  *surrealmodels.RecordID       `json:"id,omitempty"`
	UserID              *surrealmodels.RecordID       `json:"user_id,omitempty" validate:"required"`
	ProfileVisible      bool                          `json:"profile_visible"`
	ShowDownloadHistory bool                          `json:"show_download_history"`
	AllowAnalytics      bool                          `json:"allow_analytics"`
	CreatedAt           *surrealmodels.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt           *surrealmodels.CustomDateTime `json:"updated_at,omitempty"`
}

// Validate runs validation checks on the record using the defined tags.
func (p *PrivacyPreferences) Validate() error {
	return validatorInstance.Struct(p)
}

// DefaultPrivacyPreferences returns the flags applied before a user has
// saved anything.
func DefaultPrivacyPreferences() PrivacyPreferences {
	return PrivacyPreferences{
		ProfileVisible: true,
		AllowAnalytics: true,
	}
}

// PreferenceRepository defines the contract for loading and saving the
// per-user preference records. Save methods follow a read-then-branch
// pattern: the first record matching the owner is updated in place,
// otherwise a new record is created. Concurrent saves from two sessions of
// the same user are not serialized; the last writer wins.
type PreferenceRepository interface {
	GetProfile(ctx context.Context, userID *surrealmodels.RecordID) (*ProfileRecord, error)
	SaveProfile(ctx context.Context, record *ProfileRecord) (*ProfileRecord, error)

	GetNotifications(ctx context.Context, userID *surrealmodels.RecordID) (*NotificationPreferences, error)
	SaveNotifications(ctx context.Context, record *NotificationPreferences) (*NotificationPreferences, error)

	GetPrivacy(ctx context.Context, userID *surrealmodels.RecordID) (*PrivacyPreferences, error)
	SavePrivacy(ctx context.Context, record *PrivacyPreferences) (*PrivacyPreferences, error)
}
