// Package models defines the data types shared by the session manager,
// the registry and the form controllers.
package models

import "time"

// User is a registered account. Users are created by signup, never
// mutated afterwards and never deleted.
//
// The password is stored as the plain string the user typed. This mirrors
// the behavior of the system this core reimplements; it is not a security
// recommendation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the transient input to a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// SignupData is the transient input to a signup attempt. ConfirmPassword
// is optional; when non-empty it must equal Password.
type SignupData struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}
