package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/studylink/internal/middleware"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusFor maps usecase errors to HTTP status codes.
func statusFor(err error) int {
	var formErr *util.FormError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &formErr):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, usecase.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrEmbeddingUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	message := err.Error()
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		message = formErr.Message
	case code == fiber.StatusInternalServerError:
		message = "internal server error"
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a uuid: %w", name, usecase.ErrInvalidInput)
	}
	return id, nil
}

func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return id, nil
}
