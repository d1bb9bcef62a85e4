package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/studylink/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func withExposeErrors(t *testing.T, expose bool) {
	t.Helper()
	prev := exposeErrors
	exposeErrors = func() bool { return expose }
	t.Cleanup(func() { exposeErrors = prev })
}

func TestSuccessResponse(t *testing.T) {
	code, body := serve(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{
			Message:    "ok",
			Data:       []int{1},
			Pagination: response.NewPagination(1, 10, 1, 1),
		})
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Contains(t, body, "pagination")
	assert.NotContains(t, body, "meta")

	code, _ = serve(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{Code: fiber.StatusCreated})
	})
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestErrorResponse(t *testing.T) {
	formErr := NewFormError("validation failed", map[string]string{"email": "is required"})

	tests := []struct {
		name       string
		expose     bool
		params     ErrorResponseFormat
		err        error
		wantCode   int
		wantDev    string
		wantTrace  bool
		wantFields bool
	}{
		{
			name:     "default status hides cause in production",
			params:   ErrorResponseFormat{Message: "internal server error"},
			err:      errors.New("db down"),
			wantCode: fiber.StatusInternalServerError,
		},
		{
			name:      "server error exposes cause and trace",
			expose:    true,
			params:    ErrorResponseFormat{Message: "internal server error"},
			err:       errors.New("db down"),
			wantCode:  fiber.StatusInternalServerError,
			wantDev:   "db down",
			wantTrace: true,
		},
		{
			name:     "client error exposes cause without trace",
			expose:   true,
			params:   ErrorResponseFormat{Code: fiber.StatusNotFound, Message: "not found"},
			err:      fmt.Errorf("find group: %w", errors.New("not found")),
			wantCode: fiber.StatusNotFound,
			wantDev:  "find group: not found",
		},
		{
			name:       "form fields become details",
			params:     ErrorResponseFormat{Code: fiber.StatusUnprocessableEntity, Message: "validation failed"},
			err:        fmt.Errorf("signup: %w", formErr),
			wantCode:   fiber.StatusUnprocessableEntity,
			wantFields: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withExposeErrors(t, tt.expose)
			code, body := serve(t, func(c *fiber.Ctx) error {
				return ErrorResponse(c, tt.params, tt.err)
			})
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.params.Message, body["message"])
			if tt.wantDev != "" {
				assert.Equal(t, tt.wantDev, body["dev_message"])
			} else {
				assert.NotContains(t, body, "dev_message")
			}
			if tt.wantTrace {
				assert.NotEmpty(t, body["trace"])
			} else {
				assert.NotContains(t, body, "trace")
			}
			if tt.wantFields {
				assert.Equal(t, map[string]any{"email": "is required"}, body["details"])
			} else {
				assert.NotContains(t, body, "details")
			}
		})
	}
}

func TestErrorResponse_NoCause(t *testing.T) {
	withExposeErrors(t, true)
	code, body := serve(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusTooManyRequests, Message: "slow down"})
	})
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	assert.NotContains(t, body, "dev_message")
}
