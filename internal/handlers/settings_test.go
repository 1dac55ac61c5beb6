package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/handlers"
	"github.com/psalmos/web/internal/pubsub"
)

// recordingPrefs captures the records passed to each save method.
type recordingPrefs struct {
	savedProfile       *domain.ProfileRecord
	savedNotifications *domain.NotificationPreferences
	savedPrivacy       *domain.PrivacyPreferences
}

func (r *recordingPrefs) GetProfile(context.Context, *surrealmodels.RecordID) (*domain.ProfileRecord, error) {
	return nil, nil
}

func (r *recordingPrefs) SaveProfile(_ context.Context, rec *domain.ProfileRecord) (*domain.ProfileRecord, error) {
	r.savedProfile = rec
	return rec, nil
}

func (r *recordingPrefs) GetNotifications(context.Context, *surrealmodels.RecordID) (*domain.NotificationPreferences, error) {
	return nil, nil
}

func (r *recordingPrefs) SaveNotifications(_ context.Context, rec *domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	r.savedNotifications = rec
	return rec, nil
}

func (r *recordingPrefs) GetPrivacy(context.Context, *surrealmodels.RecordID) (*domain.PrivacyPreferences, error) {
	return nil, nil
}

func (r *recordingPrefs) SavePrivacy(_ context.Context, rec *domain.PrivacyPreferences) (*domain.PrivacyPreferences, error) {
	r.savedPrivacy = rec
	return rec, nil
}

// capturingPublisher collects every published message.
type capturingPublisher struct {
	messages []pubsub.Message
}

func (p *capturingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func authedSession() domain.Session {
	id := surrealmodels.NewRecordID("user", "settings-test")
	name := "Ada Lovelace"
	return domain.Session{User: &domain.User{ID: &id, Email: "ada@example.com", DisplayName: &name}}
}

func TestSaveProfile(t *testing.T) {
	t.Run("saves the record and refreshes the account name", func(t *testing.T) {
		provider := &mockSessionProvider{}
		prefs := &recordingPrefs{}
		publisher := &capturingPublisher{}
		h := handlers.NewSettingsHandler(provider, prefs, publisher)
		sess := authedSession()

		req := formRequest("/settings/profile", url.Values{
			"display_name": {"Ada Lovelace"},
			"bio":          {"Analytical engines enthusiast."},
			"company":      {"Babbage & Co"},
			"website":      {"https://ada.example.com"},
		})
		rec := runHandler(t, req, &sess, h.SaveProfile)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/settings", rec.Header().Get(echo.HeaderLocation))

		require.NotNil(t, prefs.savedProfile)
		assert.Equal(t, "Ada Lovelace", prefs.savedProfile.DisplayName)
		assert.Equal(t, "Babbage & Co", prefs.savedProfile.Company)
		assert.Equal(t, sess.User.ID, prefs.savedProfile.UserID)

		require.Len(t, provider.updateCalls, 1)
		assert.Equal(t, "Ada Lovelace", *provider.updateCalls[0].DisplayName)

		require.Len(t, publisher.messages, 1)
		assert.Equal(t, pubsub.TopicPreferencesSaved, publisher.messages[0].Topic)
		assert.Equal(t, "profile", publisher.messages[0].Metadata["category"])
	})

	t.Run("invalid website never reaches the repository", func(t *testing.T) {
		prefs := &recordingPrefs{}
		h := handlers.NewSettingsHandler(&mockSessionProvider{}, prefs, nil)
		sess := authedSession()

		req := formRequest("/settings/profile", url.Values{
			"display_name": {"Ada Lovelace"},
			"website":      {"not-a-url"},
		})
		rec := runHandler(t, req, &sess, h.SaveProfile)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Nil(t, prefs.savedProfile)
	})

	t.Run("anonymous save is a no-op redirect", func(t *testing.T) {
		prefs := &recordingPrefs{}
		h := handlers.NewSettingsHandler(&mockSessionProvider{}, prefs, nil)

		req := formRequest("/settings/profile", url.Values{"display_name": {"Ada"}})
		rec := runHandler(t, req, nil, h.SaveProfile)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Nil(t, prefs.savedProfile)
	})
}

func TestSaveNotifications(t *testing.T) {
	prefs := &recordingPrefs{}
	publisher := &capturingPublisher{}
	h := handlers.NewSettingsHandler(&mockSessionProvider{}, prefs, publisher)
	sess := authedSession()

	// Checkboxes submit "on" when checked and are absent when unchecked.
	req := formRequest("/settings/notifications", url.Values{
		"email_updates":     {"on"},
		"new_releases":      {"true"},
		"license_reminders": {"false"},
	})
	rec := runHandler(t, req, &sess, h.SaveNotifications)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/settings?tab=notifications", rec.Header().Get(echo.HeaderLocation))

	require.NotNil(t, prefs.savedNotifications)
	assert.True(t, prefs.savedNotifications.EmailUpdates)
	assert.True(t, prefs.savedNotifications.NewReleases)
	assert.False(t, prefs.savedNotifications.LicenseReminders)
	assert.False(t, prefs.savedNotifications.MarketingEmails)

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, "notifications", publisher.messages[0].Metadata["category"])
}

func TestSavePrivacy(t *testing.T) {
	prefs := &recordingPrefs{}
	h := handlers.NewSettingsHandler(&mockSessionProvider{}, prefs, nil)
	sess := authedSession()

	req := formRequest("/settings/privacy", url.Values{
		"profile_visible": {"on"},
	})
	rec := runHandler(t, req, &sess, h.SavePrivacy)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/settings?tab=privacy", rec.Header().Get(echo.HeaderLocation))

	require.NotNil(t, prefs.savedPrivacy)
	assert.True(t, prefs.savedPrivacy.ProfileVisible)
	assert.False(t, prefs.savedPrivacy.ShowDownloadHistory)
	assert.False(t, prefs.savedPrivacy.AllowAnalytics)
}
