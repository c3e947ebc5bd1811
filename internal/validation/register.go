// Package validation contains pure request-payload validators. Each validator
// maps a payload to a per-field error map; an empty map means the payload is
// valid.
package validation

import (
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegisterInput checks the registration payload.
func ValidateRegisterInput(in RegisterInput) (map[string]string, bool) {
	errs := map[string]string{}

	if n := utf8.RuneCountInString(in.Name); n < 3 || n > 32 {
		errs["name"] = "Name must be between 3 and 32 characters."
	}
	if in.Email == "" {
		errs["email"] = "Email is required."
	} else if !emailRegex.MatchString(in.Email) {
		errs["email"] = "Email is invalid."
	}
	if in.Password == "" {
		errs["password"] = "Password is required."
	} else if n := len(in.Password); n < 6 || n > 30 {
		errs["password"] = "Password must be between 6 and 30 characters."
	}

	return errs, len(errs) == 0
}
