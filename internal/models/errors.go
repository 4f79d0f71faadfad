package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in the response envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeAlreadyLiked       = "ALREADY_LIKED"
	CodeAlreadyReposted    = "ALREADY_REPOSTED"
	CodeAlreadyFollowing   = "ALREADY_FOLLOWING"
	CodeInvalidAction      = "INVALID_ACTION"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Details []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to an HTTP status at the request boundary.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidationError, CodeInvalidAction:
		return fiber.StatusBadRequest
	case CodeUnauthorized, CodeInvalidToken, CodeUserNotFound, CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAlreadyLiked, CodeAlreadyReposted, CodeAlreadyFollowing:
		return fiber.StatusConflict
	case CodeRateLimitExceeded:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(message string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: message,
		Details: details,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInvalidTokenError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidToken,
		Message: message,
	}
}

func NewUserNotFoundError() *AppError {
	return &AppError{
		Code:    CodeUserNotFound,
		Message: "User no longer exists",
	}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid credentials",
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

// NewConflictError builds a relation conflict error (ALREADY_LIKED and friends).
func NewConflictError(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewInvalidActionError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidAction,
		Message: message,
	}
}

func NewRateLimitError() *AppError {
	return &AppError{
		Code:    CodeRateLimitExceeded,
		Message: "Too many requests, please try again later",
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Err:     err,
	}
}
