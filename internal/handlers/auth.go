package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/view"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	sessions auth.SessionProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions auth.SessionProvider) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// RegisterPost handles the registration form (POST /auth/register).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Could not read the form.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Enter a valid email and a password of at least 8 characters.")
		return redirectWithEmail(c, req.Email)
	}

	token, err := h.sessions.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			view.SetFlashError(c, "A user with this email already exists.")
		} else {
			slog.Error("Error creating user", "error", err)
			view.SetFlashError(c, "Could not create your account.")
		}
		return redirectWithEmail(c, req.Email)
	}

	middleware.SetAuthCookie(c, token)
	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// LoginPost handles the login form (POST /auth/login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	token, err := h.sessions.Login(c.Request().Context(), email, password)
	if err != nil {
		slog.Warn("Failed login attempt", "email", email, "error", err)
		view.SetFlashError(c, "Invalid email or password.")
		return redirectWithEmail(c, email)
	}

	middleware.SetAuthCookie(c, token)
	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session cookie (POST /auth/logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess.Authenticated() {
		h.sessions.Logout(c.Request().Context(), sess.User)
	}

	middleware.ClearAuthCookie(c)
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// redirectWithEmail sends the user back to the sign-in gate with the
// submitted email preserved for re-filling the form.
func redirectWithEmail(c echo.Context, email string) error {
	target := "/dashboard"
	if email != "" {
		target += "?form_email=" + url.QueryEscape(email)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
