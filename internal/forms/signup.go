package forms

import (
	"context"
	"strings"

	"github.com/avoronin/authkeep/internal/models"
	"github.com/avoronin/authkeep/internal/validation"
)

// SignupForm collects name, email and password (with optional
// confirmation) for a signup attempt.
type SignupForm struct {
	auth   Authenticator
	values map[string]string
	errors map[string]string
}

func NewSignupForm(auth Authenticator) *SignupForm {
	return &SignupForm{
		auth:   auth,
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

// SetField updates a field value and clears that field's existing error.
func (f *SignupForm) SetField(field, value string) {
	f.values[field] = value
	delete(f.errors, field)
}

// Value returns the current value of a field.
func (f *SignupForm) Value(field string) string {
	return f.values[field]
}

// Errors returns the field→message map populated by the last validation.
func (f *SignupForm) Errors() map[string]string {
	return f.errors
}

// Validate checks every required field, fills the error map, and reports
// whether the form may be submitted. The confirmation field only
// participates when it is non-empty.
func (f *SignupForm) Validate() bool {
	errs := make(map[string]string)

	if strings.TrimSpace(f.values[FieldName]) == "" {
		errs[FieldName] = msgNameRequired
	}

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

	if confirm := f.values[FieldConfirmPassword]; confirm != "" && confirm != password {
		errs[FieldConfirmPassword] = msgPasswordMismatch
	}

	f.errors = errs
	return len(errs) == 0
}

// Submit validates and, if the form is clean, performs the signup.
func (f *SignupForm) Submit(ctx context.Context) error {
	if !f.Validate() {
		return nil
	}
	return f.auth.Signup(ctx, models.SignupData{
		Name:            f.values[FieldName],
		Email:           f.values[FieldEmail],
		Password:        f.values[FieldPassword],
		ConfirmPassword: f.values[FieldConfirmPassword],
	})
}
