package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/middleware"
)

// stubProvider only implements Authenticate meaningfully; the middleware
// never touches the other methods.
type stubProvider struct {
	user *domain.User
	err  error
}

func (s *stubProvider) Register(context.Context, string, string) (string, error) { return "", nil }
func (s *stubProvider) Login(context.Context, string, string) (string, error)    { return "", nil }
func (s *stubProvider) Logout(context.Context, *domain.User)                     {}
func (s *stubProvider) Authenticate(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}
func (s *stubProvider) UpdateProfile(context.Context, *domain.User, domain.ProfileUpdate) (*domain.User, error) {
	return nil, nil
}
func (s *stubProvider) Subscribe(func(auth.Event)) func() { return func() {} }

func resolveWith(t *testing.T, provider auth.SessionProvider, cookie *http.Cookie) (domain.Session, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var sess domain.Session
	err := middleware.ResolveSession(provider)(func(ctx echo.Context) error {
		sess = middleware.SessionFromContext(ctx)
		return nil
	})(c)
	require.NoError(t, err)

	return sess, rec
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AuthCookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestResolveSession(t *testing.T) {
	t.Run("no cookie yields an anonymous session", func(t *testing.T) {
		sess, _ := resolveWith(t, &stubProvider{}, nil)
		assert.False(t, sess.Authenticated())
		assert.Nil(t, sess.Err)
	})

	t.Run("empty cookie yields an anonymous session", func(t *testing.T) {
		sess, _ := resolveWith(t, &stubProvider{},
			&http.Cookie{Name: middleware.AuthCookieName, Value: ""})
		assert.False(t, sess.Authenticated())
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		user := &domain.User{Email: "ada@example.com"}
		sess, _ := resolveWith(t, &stubProvider{user: user},
			&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

		require.True(t, sess.Authenticated())
		assert.Equal(t, "ada@example.com", sess.User.Email)
	})

	t.Run("invalid token clears the cookie and stays anonymous", func(t *testing.T) {
		sess, rec := resolveWith(t, &stubProvider{err: domain.ErrInvalidCredentials},
			&http.Cookie{Name: middleware.AuthCookieName, Value: "stale-token"})

		assert.False(t, sess.Authenticated())
		assert.Nil(t, sess.Err)
		assert.True(t, clearedCookie(rec))
	})

	t.Run("backend failure surfaces on the session", func(t *testing.T) {
		cause := errors.New("db unreachable")
		sess, rec := resolveWith(t, &stubProvider{err: cause},
			&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

		assert.False(t, sess.Authenticated())
		assert.Equal(t, cause, sess.Err)
		assert.False(t, clearedCookie(rec), "a transient failure must not log the user out")
	})

	t.Run("nil user with nil error clears the cookie", func(t *testing.T) {
		sess, rec := resolveWith(t, &stubProvider{},
			&http.Cookie{Name: middleware.AuthCookieName, Value: "orphan-token"})

		assert.False(t, sess.Authenticated())
		assert.True(t, clearedCookie(rec))
	})
}

func TestSessionFromContextOutsideChain(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	sess := middleware.SessionFromContext(c)
	assert.False(t, sess.Authenticated())
}
