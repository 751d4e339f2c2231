package domain

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidationError reports a single field that failed input validation.
// It is raised before any store call, so bad input never creates state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidatePhoneNumber accepts exactly 10 digits.
func ValidatePhoneNumber(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateEmail accepts addresses of the form local@domain.tld.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword accepts passwords of at least 8 characters.
func ValidatePassword(password string) bool {
	return len(password) >= 8
}
