package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/pubsub"
	"github.com/psalmos/web/internal/view"
)

// SettingsHandler persists the settings page forms.
type SettingsHandler struct {
	sessions  auth.SessionProvider
	prefs     domain.PreferenceRepository
	publisher pubsub.Publisher
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(sessions auth.SessionProvider, prefs domain.PreferenceRepository, publisher pubsub.Publisher) *SettingsHandler {
	return &SettingsHandler{sessions: sessions, prefs: prefs, publisher: publisher}
}

// SaveProfile handles POST /settings/profile. It saves the profile record
// and pushes the display name into the account so the header updates too.
func (h *SettingsHandler) SaveProfile(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/settings")
	}

	var req ProfileSettingsRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Could not read the form.")
		return c.Redirect(http.StatusSeeOther, "/settings")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Display name is required; website must be a valid URL.")
		return c.Redirect(http.StatusSeeOther, "/settings")
	}

	record := &domain.ProfileRecord{
		UserID:      sess.User.ID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Company:     req.Company,
		Website:     req.Website,
	}
	if sess.User.AvatarURL != nil {
		record.AvatarURL = *sess.User.AvatarURL
	}

	if _, err := h.prefs.SaveProfile(c.Request().Context(), record); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save profile", "error", err)
		view.SetFlashError(c, "Could not save your profile. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/settings")
	}

	if _, err := h.sessions.UpdateProfile(c.Request().Context(), sess.User,
		domain.ProfileUpdate{DisplayName: &req.DisplayName}); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Profile record saved but account update failed", "error", err)
	}

	h.publishSaved(c, sess.User, "profile")
	view.SetFlashSuccess(c, "Profile saved.")
	return c.Redirect(http.StatusSeeOther, "/settings")
}

// SaveNotifications handles POST /settings/notifications.
func (h *SettingsHandler) SaveNotifications(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/settings")
	}

	record := &domain.NotificationPreferences{
		UserID:           sess.User.ID,
		EmailUpdates:     formBool(c, "email_updates"),
		NewReleases:      formBool(c, "new_releases"),
		LicenseReminders: formBool(c, "license_reminders"),
		MarketingEmails:  formBool(c, "marketing_emails"),
	}

	if _, err := h.prefs.SaveNotifications(c.Request().Context(), record); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save notification preferences", "error", err)
		view.SetFlashError(c, "Could not save your preferences. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/settings?tab=notifications")
	}

	h.publishSaved(c, sess.User, "notifications")
	view.SetFlashSuccess(c, "Notification preferences saved.")
	return c.Redirect(http.StatusSeeOther, "/settings?tab=notifications")
}

// SavePrivacy handles POST /settings/privacy.
func (h *SettingsHandler) SavePrivacy(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/settings")
	}

	record := &domain.PrivacyPreferences{
		UserID:              sess.User.ID,
		ProfileVisible:      formBool(c, "profile_visible"),
		ShowDownloadHistory: formBool(c, "show_download_history"),
		AllowAnalytics:      formBool(c, "allow_analytics"),
	}

	if _, err := h.prefs.SavePrivacy(c.Request().Context(), record); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save privacy preferences", "error", err)
		view.SetFlashError(c, "Could not save your preferences. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/settings?tab=privacy")
	}

	h.publishSaved(c, sess.User, "privacy")
	view.SetFlashSuccess(c, "Privacy preferences saved.")
	return c.Redirect(http.StatusSeeOther, "/settings?tab=privacy")
}

func (h *SettingsHandler) publishSaved(c echo.Context, user *domain.User, category string) {
	if h.publisher == nil {
		return
	}
	msg := pubsub.Message{
		Topic:    pubsub.TopicPreferencesSaved,
		Metadata: map[string]string{"category": category},
	}
	if user.ID != nil {
		msg.UserID = user.ID.String()
	}
	if err := h.publisher.Publish(c.Request().Context(), msg); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to publish preference event", "error", err)
	}
}

// formBool reads a checkbox value. Unchecked boxes are absent from the form
// body, which reads as false.
func formBool(c echo.Context, name string) bool {
	return c.FormValue(name) == "true" || c.FormValue(name) == "on"
}
