package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/handlers"
	"github.com/psalmos/web/internal/middleware"
)

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestLoginPost(t *testing.T) {
	t.Run("successful login sets the auth cookie", func(t *testing.T) {
		provider := &mockSessionProvider{loginToken: "tok-123"}
		h := handlers.NewAuthHandler(provider)

		req := formRequest("/auth/login", url.Values{
			"email":    {"ada@example.com"},
			"password": {"correct-horse"},
		})
		rec := runHandler(t, req, nil, h.LoginPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, 1, provider.loginCalls)

		cookie := findCookie(rec, middleware.AuthCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("failed login redirects back to the gate with the email", func(t *testing.T) {
		provider := &mockSessionProvider{loginErr: domain.ErrInvalidCredentials}
		h := handlers.NewAuthHandler(provider)

		req := formRequest("/auth/login", url.Values{
			"email":    {"ada@example.com"},
			"password": {"wrong"},
		})
		rec := runHandler(t, req, nil, h.LoginPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard?form_email=ada%40example.com", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, findCookie(rec, middleware.AuthCookieName))
	})
}

func TestRegisterPost(t *testing.T) {
	t.Run("successful registration sets the auth cookie", func(t *testing.T) {
		provider := &mockSessionProvider{registerToken: "tok-456"}
		h := handlers.NewAuthHandler(provider)

		req := formRequest("/auth/register", url.Values{
			"email":    {"new@example.com"},
			"password": {"long-enough-password"},
		})
		rec := runHandler(t, req, nil, h.RegisterPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

		cookie := findCookie(rec, middleware.AuthCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-456", cookie.Value)
	})

	t.Run("short password never reaches the provider", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := handlers.NewAuthHandler(provider)

		req := formRequest("/auth/register", url.Values{
			"email":    {"new@example.com"},
			"password": {"short"},
		})
		rec := runHandler(t, req, nil, h.RegisterPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard?form_email=new%40example.com", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, 0, provider.registerCalls)
	})

	t.Run("duplicate email redirects back with the email", func(t *testing.T) {
		provider := &mockSessionProvider{registerErr: domain.ErrUserAlreadyExists}
		h := handlers.NewAuthHandler(provider)

		req := formRequest("/auth/register", url.Values{
			"email":    {"taken@example.com"},
			"password": {"long-enough-password"},
		})
		rec := runHandler(t, req, nil, h.RegisterPost)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard?form_email=taken%40example.com", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, findCookie(rec, middleware.AuthCookieName))
	})
}

func TestLogout(t *testing.T) {
	t.Run("authenticated user is signed out and the cookie cleared", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := handlers.NewAuthHandler(provider)

		sess := domain.Session{User: &domain.User{Email: "ada@example.com"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := runHandler(t, req, &sess, h.Logout)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, 1, provider.logoutCalls)

		cookie := findCookie(rec, middleware.AuthCookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("anonymous logout does not call the provider", func(t *testing.T) {
		provider := &mockSessionProvider{}
		h := handlers.NewAuthHandler(provider)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := runHandler(t, req, nil, h.Logout)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 0, provider.logoutCalls)
	})
}
