// Package validation contains pure format checks for user input.
// The functions are synchronous, side-effect free and cheap enough to run
// on every keystroke.
package validation

import "regexp"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// emailRe accepts the conventional local@domain.tld shape: a non-empty
// local part, one '@', and a domain with at least one dot followed by a
// non-empty suffix. No MX or deliverability checks.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePassword reports whether s satisfies the length policy.
// There are no character-class requirements.
func ValidatePassword(s string) bool {
	return len(s) >= MinPasswordLength
}
