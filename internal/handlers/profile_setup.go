package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/storage"
	"github.com/psalmos/web/internal/view"
)

const maxAvatarSize = 5 << 20 // 5 MB

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ProfileSetupHandler completes the first-run profile: display name plus an
// optional avatar upload.
type ProfileSetupHandler struct {
	sessions auth.SessionProvider
	blobs    *storage.BlobStore
}

// NewProfileSetupHandler creates a new ProfileSetupHandler.
func NewProfileSetupHandler(sessions auth.SessionProvider, blobs *storage.BlobStore) *ProfileSetupHandler {
	return &ProfileSetupHandler{sessions: sessions, blobs: blobs}
}

// SetupPost handles the profile setup form (POST /profile/setup). An empty
// display name never reaches the session provider. A failed avatar upload
// aborts the whole submission so the user can retry with both fields intact.
func (h *ProfileSetupHandler) SetupPost(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	displayName := strings.TrimSpace(c.FormValue("display_name"))
	if displayName == "" {
		view.SetFlashError(c, "Display name is required.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	update := domain.ProfileUpdate{DisplayName: &displayName}

	if file, err := c.FormFile("avatar"); err == nil && file.Size > 0 {
		avatarURL, err := h.uploadAvatar(c, sess.User, file)
		if err != nil {
			middleware.FromContext(c.Request().Context()).Warn(
				"Avatar upload failed", "user", sess.User.Email, "error", err)
			view.SetFlashError(c, "Could not upload your avatar. Your profile was not saved; please try again.")
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		update.AvatarURL = &avatarURL
	}

	if _, err := h.sessions.UpdateProfile(c.Request().Context(), sess.User, update); err != nil {
		middleware.FromContext(c.Request().Context()).Error(
			"Profile setup failed", "user", sess.User.Email, "error", err)
		view.SetFlashError(c, "Could not save your profile. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	view.SetFlashSuccess(c, "Welcome to Psalmos, "+displayName+"!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *ProfileSetupHandler) uploadAvatar(c echo.Context, user *domain.User, file *multipart.FileHeader) (string, error) {
	if file.Size > maxAvatarSize {
		return "", fmt.Errorf("avatar exceeds %d bytes", maxAvatarSize)
	}
	contentType := file.Header.Get(echo.HeaderContentType)
	if !allowedAvatarTypes[contentType] {
		return "", fmt.Errorf("unsupported avatar type %q", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	owner := user.Email
	if user.ID != nil {
		owner = user.ID.String()
	}
	blobPath := fmt.Sprintf("avatars/%s/%s-%s", owner, uuid.NewString(), filepath.Base(file.Filename))

	// Re-submissions overwrite rather than fail, so upsert is on.
	return h.blobs.Upload(c.Request().Context(), blobPath, src, true)
}
