package handler

import (
	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc          *usecase.UserUsecase
	requireAuth fiber.Handler
}

func NewUserHandler(uc *usecase.UserUsecase, requireAuth fiber.Handler) *UserHandler {
	return &UserHandler{uc: uc, requireAuth: requireAuth}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	me := app.Group("/api/me", h.requireAuth)
	me.Get("/", h.Profile)
	me.Put("/", h.UpdateProfile)
	me.Get("/applications", h.Applications)
	me.Get("/study-groups/participating", h.ParticipatingGroups)
	me.Get("/study-groups/created", h.CreatedGroups)
	me.Get("/interests", h.Interests)
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.uc.GetProfile(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    dto.NewUserProfileDTO(user),
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateProfileRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.uc.UpdateProfile(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    dto.NewUserProfileDTO(user),
	})
}

func (h *UserHandler) Applications(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	apps, err := h.uc.MyApplications(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    dto.NewMemberApplicationDTOs(apps),
	})
}

func (h *UserHandler) ParticipatingGroups(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groups, err := h.uc.ParticipatingGroups(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get participating study groups",
		Data:    dto.NewStudyGroupListDTOs(groups),
	})
}

func (h *UserHandler) CreatedGroups(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groups, err := h.uc.CreatedGroups(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get created study groups",
		Data:    dto.NewStudyGroupListDTOs(groups),
	})
}

func (h *UserHandler) Interests(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groups, err := h.uc.InterestedGroups(userID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interests",
		Data:    dto.NewStudyGroupListDTOs(groups),
	})
}
