package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/handlers"
	"github.com/psalmos/web/internal/middleware"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// mockSessionProvider records calls and returns canned results.
type mockSessionProvider struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	updateErr     error

	registerCalls int
	loginCalls    int
	logoutCalls   int
	updateCalls   []domain.ProfileUpdate
}

func (m *mockSessionProvider) Register(_ context.Context, email, password string) (string, error) {
	m.registerCalls++
	return m.registerToken, m.registerErr
}

func (m *mockSessionProvider) Login(_ context.Context, email, password string) (string, error) {
	m.loginCalls++
	return m.loginToken, m.loginErr
}

func (m *mockSessionProvider) Logout(_ context.Context, _ *domain.User) {
	m.logoutCalls++
}

func (m *mockSessionProvider) Authenticate(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (m *mockSessionProvider) UpdateProfile(_ context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	m.updateCalls = append(m.updateCalls, update)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	updated := *user
	updated.DisplayName = update.DisplayName
	if update.AvatarURL != nil {
		updated.AvatarURL = update.AvatarURL
	}
	return &updated, nil
}

func (m *mockSessionProvider) Subscribe(fn func(auth.Event)) func() {
	return func() {}
}

// runHandler executes a handler under the session middleware so flash
// messages work, optionally with a pre-resolved session on the context.
func runHandler(t *testing.T, req *http.Request, sess *domain.Session, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = handlers.NewValidator()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret)))
	err := mw(func(ctx echo.Context) error {
		if sess != nil {
			ctx.Set(middleware.SessionContextKey, *sess)
		}
		return h(ctx)
	})(c)
	require.NoError(t, err)

	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
