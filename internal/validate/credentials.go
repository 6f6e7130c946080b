// Package validate holds the pure format checks for credentials and ids.
// The functions are total over strings and never mutate their input.
package validate

import (
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	// 6-30 chars, must start with a letter, then letters/digits/underscore.
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{5,29}$`)

	emailRe = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9_.-]+@([a-z-]+\.)+[a-z-]{2,4}$`)
)

func Username(s string) bool {
	if s == "" {
		return false
	}
	return usernameRe.MatchString(s)
}

func Email(s string) bool {
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}

// Password requires at least 14 characters (not bytes) with at least
// one lowercase letter, one uppercase letter and one digit. Anything
// else (spaces, symbols) is allowed and ignored.
func Password(s string) bool {
	if utf8.RuneCountInString(s) < 14 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// ID reports whether s is a well-formed entity id (UUID).
func ID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
