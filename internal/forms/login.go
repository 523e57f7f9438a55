package forms

import (
	"context"
	"strings"

	"github.com/avoronin/authkeep/internal/models"
	"github.com/avoronin/authkeep/internal/validation"
)

// LoginForm collects email and password for a login attempt.
type LoginForm struct {
	auth   Authenticator
	values map[string]string
	errors map[string]string
}

func NewLoginForm(auth Authenticator) *LoginForm {
	return &LoginForm{
		auth:   auth,
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

// SetField updates a field value. An existing error on that field is
// cleared so the user sees it disappear while typing; other fields are not
// re-validated until the next submission.
func (f *LoginForm) SetField(field, value string) {
	f.values[field] = value
	delete(f.errors, field)
}

// Value returns the current value of a field.
func (f *LoginForm) Value(field string) string {
	return f.values[field]
}

// Errors returns the field→message map populated by the last validation.
func (f *LoginForm) Errors() map[string]string {
	return f.errors
}

// Validate checks every required field, fills the error map, and reports
// whether the form may be submitted.
func (f *LoginForm) Validate() bool {
	errs := make(map[string]string)

	email := f.values[FieldEmail]
	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = msgEmailRequired
	} else if !validation.ValidateEmail(email) {
		errs[FieldEmail] = msgEmailInvalid
	}

	password := f.values[FieldPassword]
	if password == "" {
		errs[FieldPassword] = msgPasswordRequired
	} else if !validation.ValidatePassword(password) {
		errs[FieldPassword] = msgPasswordTooShort
	}

	f.errors = errs
	return len(errs) == 0
}

// Submit validates and, if the form is clean, performs the login. Auth
// errors come back to the caller; the session manager already records them
// in the global state, so the form does not keep its own copy.
func (f *LoginForm) Submit(ctx context.Context) error {
	if !f.Validate() {
		return nil
	}
	return f.auth.Login(ctx, models.Credentials{
		Email:    f.values[FieldEmail],
		Password: f.values[FieldPassword],
	})
}
