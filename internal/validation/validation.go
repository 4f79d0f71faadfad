// Package validation holds input validation rules shared by handlers.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"ripple/internal/models"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Username enforces 3-30 characters of letters, digits and underscores.
func Username(username string) *models.FieldError {
	if !usernameRe.MatchString(username) {
		return &models.FieldError{
			Field:   "username",
			Message: "Username must be 3-30 characters (letters, numbers, underscores)",
		}
	}
	return nil
}

// Email performs a light-weight format check.
func Email(email string) *models.FieldError {
	if !emailRe.MatchString(email) {
		return &models.FieldError{
			Field:   "email",
			Message: "Invalid email address",
		}
	}
	return nil
}

// Password requires at least 8 characters with one letter and one digit.
func Password(password string) *models.FieldError {
	if len(password) < 8 {
		return &models.FieldError{
			Field:   "password",
			Message: "Password must be at least 8 characters",
		}
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &models.FieldError{
			Field:   "password",
			Message: "Password must contain at least one letter and one number",
		}
	}
	return nil
}

// Content trims and bounds a post or comment body. Returns the trimmed
// content and a field error when it is empty or over the limit.
func Content(field, content string) (string, *models.FieldError) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", &models.FieldError{Field: field, Message: "Content is required"}
	}
	if len([]rune(trimmed)) > models.MaxContentLen {
		return "", &models.FieldError{
			Field:   field,
			Message: "Content must be 500 characters or fewer",
		}
	}
	return trimmed, nil
}
