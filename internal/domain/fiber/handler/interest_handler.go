package handler

import (
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterestHandler struct {
	uc          *usecase.InterestUsecase
	requireAuth fiber.Handler
}

func NewInterestHandler(uc *usecase.InterestUsecase, requireAuth fiber.Handler) *InterestHandler {
	return &InterestHandler{uc: uc, requireAuth: requireAuth}
}

func (h *InterestHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/study-groups/:groupId/interest", h.requireAuth, h.Toggle)
}

func (h *InterestHandler) Toggle(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	interested, err := h.uc.Toggle(userID, groupID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle interest",
		Data:    fiber.Map{"interested": interested},
	})
}
