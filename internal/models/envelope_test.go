package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"empty", 1, 20, 0, 0},
		{"exact fit", 1, 20, 40, 2},
		{"partial last page", 1, 20, 41, 3},
		{"single item", 1, 20, 1, 1},
		{"zero limit", 1, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestAppErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{CodeValidationError, fiber.StatusBadRequest},
		{CodeInvalidAction, fiber.StatusBadRequest},
		{CodeUnauthorized, fiber.StatusUnauthorized},
		{CodeInvalidToken, fiber.StatusUnauthorized},
		{CodeUserNotFound, fiber.StatusUnauthorized},
		{CodeInvalidCredentials, fiber.StatusUnauthorized},
		{CodeForbidden, fiber.StatusForbidden},
		{CodeNotFound, fiber.StatusNotFound},
		{CodeAlreadyLiked, fiber.StatusConflict},
		{CodeAlreadyReposted, fiber.StatusConflict},
		{CodeAlreadyFollowing, fiber.StatusConflict},
		{CodeRateLimitExceeded, fiber.StatusTooManyRequests},
		{CodeInternalError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppError{Code: tt.code, Message: "x"}
			assert.Equal(t, tt.status, err.HTTPStatus())
		})
	}
}

func getEnvelope(t *testing.T, app *fiber.App, path string) (int, Envelope) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return RespondWithError(c, NewNotFoundError("Post"))
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return RespondWithError(c, NewConflictError(CodeAlreadyLiked, "Post already liked"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return RespondWithError(c, errors.New("pq: connection refused"))
	})
	app.Get("/details", func(c *fiber.Ctx) error {
		return RespondWithError(c, NewValidationError("Validation failed",
			FieldError{Field: "content", Message: "Content is required"}))
	})

	t.Run("not found", func(t *testing.T) {
		status, env := getEnvelope(t, app, "/notfound")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, CodeNotFound, env.Error.Code)
		assert.Equal(t, "Post not found", env.Error.Message)
		assert.False(t, env.Timestamp.IsZero())
	})

	t.Run("conflict", func(t *testing.T) {
		status, env := getEnvelope(t, app, "/conflict")
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, CodeAlreadyLiked, env.Error.Code)
	})

	t.Run("unknown errors become internal and never leak", func(t *testing.T) {
		status, env := getEnvelope(t, app, "/internal")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, CodeInternalError, env.Error.Code)
		assert.NotContains(t, env.Error.Message, "pq:")
	})

	t.Run("validation details are carried", func(t *testing.T) {
		status, env := getEnvelope(t, app, "/details")
		assert.Equal(t, fiber.StatusBadRequest, status)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "content", env.Error.Details[0].Field)
	})
}

func TestRespondPage(t *testing.T) {
	app := fiber.New()
	app.Get("/page", func(c *fiber.Ctx) error {
		return RespondPage(c, []string{"a", "b"}, NewPagination(2, 20, 41))
	})

	status, env := getEnvelope(t, app, "/page")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 3, env.Pagination.TotalPages)
}
