// Package common defines shared constants and sentinel errors used across
// the authkeep components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrStorage = errors.New("storage unavailable")

	// Session-level errors surfaced by login/signup.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")

	// Form-level errors. Never recorded in the global auth state;
	// handled entirely inside the form controllers.
	ErrValidation = errors.New("validation failed")
)
