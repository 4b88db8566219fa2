package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// School ID pattern - letters and digits, 3 to 50 characters
	SchoolIDPattern = `^[A-Za-z0-9\-]{3,50}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	SchoolID *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	SchoolID: regexp.MustCompile(SchoolIDPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// IsValidSchoolID reports whether the value is an acceptable school ID.
func IsValidSchoolID(value string) bool {
	return CompiledPatterns.SchoolID.MatchString(strings.TrimSpace(value))
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}

// IsValidName reports whether a name component is within bounds.
func IsValidName(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
