package handler

import (
	"time"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/middleware"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/auth", middleware.RateLimiter(10, time.Minute))
	api.Post("/signup", h.Signup)
	api.Post("/login", h.Login)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.uc.Signup(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success sign up",
		Data:    dto.NewUserProfileDTO(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	token, err := h.uc.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success login",
		Data:    token,
	})
}
