package handler

import (
	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	uc          *usecase.ApplicationUsecase
	requireAuth fiber.Handler
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, requireAuth fiber.Handler) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, requireAuth: requireAuth}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/study-groups/:groupId/applications", h.requireAuth)
	api.Post("/", h.Apply)
	api.Get("/", h.List)
	api.Post("/:applicationId/process", h.Process)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.ApplyRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	app, err := h.uc.Apply(userID, groupID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success apply to study group",
		Data:    fiber.Map{"application_id": app.ID, "status": app.Status},
	})
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	apps, err := h.uc.ListForGroup(userID, groupID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    dto.NewApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) Process(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	applicationID, err := paramUUID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.ProcessApplicationRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	app, err := h.uc.Process(userID, groupID, applicationID, model.ApplicationStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success process application",
		Data:    fiber.Map{"application_id": app.ID, "status": app.Status},
	})
}
