package util

import (
	"errors"
	"runtime/debug"
	"strings"

	"github.com/fadilmartias/studylink/internal/config"
	"github.com/fadilmartias/studylink/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details any
}

// envelope is the body shared by success and error responses.
type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
	Details    any                  `json:"details,omitempty"`
	DevMessage string               `json:"dev_message,omitempty"`
	Trace      []string             `json:"trace,omitempty"`
}

// exposeErrors reports whether error bodies may carry the cause and a stack.
var exposeErrors = func() bool { return !config.LoadAppConfig().IsProduction() }

func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	return c.Status(statusOr(params.Code, fiber.StatusOK)).JSON(envelope{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorResponse writes the error envelope. Field errors of a FormError cause
// always become the details; outside production the cause message is added,
// plus a stack trace for server errors.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	code := statusOr(params.Code, fiber.StatusInternalServerError)
	body := envelope{Message: params.Message, Details: params.Details}

	cause := errors.Join(errs...)
	var formErr *FormError
	if errors.As(cause, &formErr) {
		body.Details = formErr.Fields
	}
	if cause != nil && exposeErrors() {
		body.DevMessage = cause.Error()
		if code >= fiber.StatusInternalServerError {
			body.Trace = stackLines()
		}
	}
	return c.Status(code).JSON(body)
}

func statusOr(code, fallback int) int {
	if code == 0 {
		return fallback
	}
	return code
}

func stackLines() []string {
	lines := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
