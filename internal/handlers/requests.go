// Package handlers holds the Echo handlers: page rendering, authentication,
// profile setup and the settings/billing form posts.
package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator to implement Echo's
// Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// CredentialsRequest is the login and registration form payload.
type CredentialsRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// ProfileSettingsRequest is the settings profile form payload.
type ProfileSettingsRequest struct {
	DisplayName string `form:"display_name" validate:"required,max=120"`
	Bio         string `form:"bio" validate:"max=2000"`
	Company     string `form:"company" validate:"max=200"`
	Website     string `form:"website" validate:"omitempty,url,max=500"`
}
