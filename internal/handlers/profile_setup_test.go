package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/handlers"
	"github.com/psalmos/web/internal/storage"
)

type avatarPart struct {
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, displayName string, avatar *avatarPart) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("display_name", displayName))

	if avatar != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+avatar.filename+`"`)
		header.Set("Content-Type", avatar.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(avatar.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/setup", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func newSetupHandler(provider *mockSessionProvider) *handlers.ProfileSetupHandler {
	blobs := storage.NewBlobStore(
		storage.NewAferoStore(afero.NewMemMapFs()),
		"http://localhost:8080/uploads",
	)
	return handlers.NewProfileSetupHandler(provider, blobs)
}

func TestProfileSetupPost(t *testing.T) {
	user := &domain.User{Email: "new@example.com"}

	t.Run("anonymous visitor is redirected without an update", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)

		rec := runHandler(t, multipartRequest(t, "Ada Lovelace", nil), nil, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Empty(t, provider.updateCalls)
	})

	t.Run("empty display name never reaches the provider", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		rec := runHandler(t, multipartRequest(t, "   ", nil), &sess, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, provider.updateCalls)
	})

	t.Run("display name only updates the profile", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		rec := runHandler(t, multipartRequest(t, "Ada Lovelace", nil), &sess, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, provider.updateCalls, 1)

		update := provider.updateCalls[0]
		require.NotNil(t, update.DisplayName)
		assert.Equal(t, "Ada Lovelace", *update.DisplayName)
		assert.Nil(t, update.AvatarURL)
	})

	t.Run("display name is trimmed before saving", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		runHandler(t, multipartRequest(t, "  Ada Lovelace  ", nil), &sess, h.SetupPost)

		require.Len(t, provider.updateCalls, 1)
		assert.Equal(t, "Ada Lovelace", *provider.updateCalls[0].DisplayName)
	})

	t.Run("valid avatar upload sets the avatar url", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		avatar := &avatarPart{filename: "me.png", contentType: "image/png", data: []byte("not-really-a-png")}
		rec := runHandler(t, multipartRequest(t, "Ada Lovelace", avatar), &sess, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, provider.updateCalls, 1)

		update := provider.updateCalls[0]
		require.NotNil(t, update.AvatarURL)
		assert.Contains(t, *update.AvatarURL, "http://localhost:8080/uploads/avatars/")
		assert.Contains(t, *update.AvatarURL, "me.png")
	})

	t.Run("rejected avatar aborts the whole submission", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		avatar := &avatarPart{filename: "evil.exe", contentType: "application/octet-stream", data: []byte("MZ")}
		rec := runHandler(t, multipartRequest(t, "Ada Lovelace", avatar), &sess, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Empty(t, provider.updateCalls, "a failed upload must not save the display name either")
	})

	t.Run("provider failure still redirects", func(t *testing.T) {
		provider := &mockSessionProvider{updateErr: assert.AnError}
		h := newSetupHandler(provider)
		sess := domain.Session{User: user}

		rec := runHandler(t, multipartRequest(t, "Ada Lovelace", nil), &sess, h.SetupPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})
}
