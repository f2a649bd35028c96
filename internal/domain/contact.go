package domain

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// IsValidPhoneNumber accepts North American numbers written as ###-###-####.
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidEmail is a shape check only: something@something.something.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
