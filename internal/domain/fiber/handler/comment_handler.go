package handler

import (
	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	uc          *usecase.CommentUsecase
	requireAuth fiber.Handler
}

func NewCommentHandler(uc *usecase.CommentUsecase, requireAuth fiber.Handler) *CommentHandler {
	return &CommentHandler{uc: uc, requireAuth: requireAuth}
}

func (h *CommentHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/study-groups/:groupId/comments", h.List)
	app.Post("/api/study-groups/:groupId/comments", h.requireAuth, h.Create)
	app.Delete("/api/comments/:commentId", h.requireAuth, h.Delete)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CommentRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.uc.Create(userID, groupID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create comment",
		Data:    fiber.Map{"id": comment.ID},
	})
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	groupID, err := paramUUID(c, "groupId")
	if err != nil {
		return respondError(c, err)
	}
	thread, err := h.uc.Thread(groupID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get comments",
		Data:    thread,
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(userID, commentID); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete comment",
	})
}
