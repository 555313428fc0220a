package validation

import (
	"regexp"
	"strings"
)

// Accepted formats: +1234567890 (7-15 digits) or 123-456-7890.
var phoneRegex = regexp.MustCompile(`^(\+\d{7,15}|\d{3}-\d{3}-\d{4})$`)

// ValidPhone reports whether phone is acceptable. Phone is an optional
// field, so the empty string is valid.
func ValidPhone(phone string) bool {

	if phone == "" {
		return true
	}

	return phoneRegex.MatchString(phone)
}

// NormalizeEmail trims surrounding whitespace and lowercases. Applied before
// every uniqueness check and before storage, so lookups and the unique index
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
