package models

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// ErrorBody is the error section of the envelope.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes totalPages as ceil(total/limit).
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// Respond writes a success envelope with the given status and payload.
func Respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// RespondMessage writes a success envelope carrying a human-readable message.
func RespondMessage(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// RespondPage writes a success envelope with pagination metadata.
func RespondPage(c *fiber.Ctx, data any, p *Pagination) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:    true,
		Data:       data,
		Pagination: p,
		Timestamp:  time.Now().UTC(),
	})
}

// RespondWithError translates err into the error envelope. Anything that is
// not an *AppError is treated as INTERNAL_ERROR; internal causes are logged
// server-side and never leak into the response body.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}
	if appErr.Code == CodeInternalError && appErr.Err != nil {
		slog.ErrorContext(c.UserContext(), "internal error",
			slog.String("path", c.Path()),
			slog.String("error", appErr.Err.Error()),
		)
	}
	return c.Status(appErr.HTTPStatus()).JSON(Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		Timestamp: time.Now().UTC(),
	})
}
