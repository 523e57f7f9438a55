// Package forms implements the per-screen input controllers. A form owns
// its transient field values and a field→message error map; validation
// messages never reach the global auth state, and auth failures raised by
// submission are returned, not duplicated into the field map.
package forms

import (
	"context"

	"github.com/avoronin/authkeep/internal/models"
)

// Field names shared by the login and signup forms.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Validation messages shown next to individual fields.
const (
	msgNameRequired     = "Name is required"
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email address"
	msgPasswordRequired = "Password is required"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgPasswordMismatch = "Passwords do not match"
)

// Authenticator is the slice of the session manager the forms submit to.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) error
	Signup(ctx context.Context, data models.SignupData) error
}
