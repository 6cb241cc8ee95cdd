package password

import (
	"strings"
	"unicode"
)

// specialChars is the fixed special-character class accepted by the
// complexity rule. Part of the API contract with the game client.
const specialChars = "!@#$%^&"

// Validate checks the candidate password against the acceptance policy.
// Rules are checked in order and the first violation wins:
//
//  1. shorter than 8 characters
//  2. longer than 72 characters (bcrypt keys on at most 72 bytes)
//  3. leading or trailing whitespace
//  4. missing one of: upper case, lower case, digit, special character
//
// It returns nil for an acceptable password and does not mutate input.
func Validate(password string) error {
	// Lengths are byte counts: rule 2 exists to keep the plaintext within
	// bcrypt's 72-byte input limit.
	if len(password) < 8 {
		return ErrTooShort
	}
	if len(password) > 72 {
		return ErrTooLong
	}
	if strings.TrimSpace(password) != password {
		return ErrEdgeSpaces
	}
	if !isComplex(password) {
		return ErrNotComplex
	}
	return nil
}

func isComplex(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
