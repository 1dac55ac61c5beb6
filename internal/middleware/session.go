// Package middleware holds the Echo middleware chain: session resolution,
// request-scoped logging and rate limiting.
package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
)

const (
	// SessionContextKey is where the resolved session lives on the Echo
	// context.
	SessionContextKey = "session"

	// AuthCookieName is the cookie carrying the session token.
	AuthCookieName = "auth_token"
)

// ResolveSession resolves the request's session snapshot and stores it on
// the context. It never blocks a request: no cookie yields an anonymous
// session, an invalid token clears the cookie and yields an anonymous
// session, and any other authentication failure yields a session carrying
// the error so the shell can render its error state.
func ResolveSession(provider auth.SessionProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := resolve(c, provider)
			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

func resolve(c echo.Context, provider auth.SessionProvider) domain.Session {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return domain.Anonymous()
	}

	user, err := provider.Authenticate(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ClearAuthCookie(c)
			return domain.Anonymous()
		}
		return domain.Session{Err: err}
	}
	if user == nil {
		ClearAuthCookie(c)
		return domain.Anonymous()
	}

	return domain.Session{User: user}
}

// SessionFromContext returns the session resolved by ResolveSession.
// Requests outside the middleware chain get an anonymous session.
func SessionFromContext(c echo.Context) domain.Session {
	if sess, ok := c.Get(SessionContextKey).(domain.Session); ok {
		return sess
	}
	return domain.Anonymous()
}

// SetAuthCookie stores a session token on the response.
func SetAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the session token cookie.
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
