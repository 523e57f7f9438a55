// Package registry implements the durable list of registered users as pure
// functions over an in-memory snapshot. Loading and persisting the snapshot
// is the session manager's job.
package registry

import (
	"encoding/json"

	"github.com/avoronin/authkeep/internal/models"
)

// FindMatch returns the first user whose email and password both equal the
// supplied values. Comparison is exact and case-sensitive on both fields.
func FindMatch(users []models.User, email, password string) (*models.User, bool) {
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], true
		}
	}
	return nil, false
}

// IsEmailTaken reports whether any user already holds the given email.
func IsEmailTaken(users []models.User, email string) bool {
	for i := range users {
		if users[i].Email == email {
			return true
		}
	}
	return false
}

// Append returns a new slice with user added at the end. The input slice is
// not modified; insertion order is preserved.
func Append(users []models.User, user models.User) []models.User {
	out := make([]models.User, 0, len(users)+1)
	out = append(out, users...)
	out = append(out, user)
	return out
}

// Encode serializes the registry for persistence.
func Encode(users []models.User) ([]byte, error) {
	return json.Marshal(users)
}

// Decode parses a persisted registry record. A nil or empty record decodes
// to an empty registry.
func Decode(data []byte) ([]models.User, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}
