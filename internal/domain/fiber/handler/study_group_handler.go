package handler

import (
	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/response"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

type StudyGroupHandler struct {
	groups          *usecase.StudyGroupUsecase
	recommendations *usecase.RecommendationUsecase
	requireAuth     fiber.Handler
}

func NewStudyGroupHandler(groups *usecase.StudyGroupUsecase, recommendations *usecase.RecommendationUsecase, requireAuth fiber.Handler) *StudyGroupHandler {
	return &StudyGroupHandler{groups: groups, recommendations: recommendations, requireAuth: requireAuth}
}

func (h *StudyGroupHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/study-groups")
	api.Get("/", h.List)
	api.Post("/", h.requireAuth, h.Create)
	api.Get("/recommendations", h.requireAuth, h.Recommendations)
	api.Get("/recommendations/v2", h.requireAuth, h.Recommendations)
	api.Get("/search/semantic", h.SemanticSearch)
	api.Get("/:id", h.Detail)
	api.Put("/:id", h.requireAuth, h.Update)
	api.Delete("/:id", h.requireAuth, h.Delete)
}

func (h *StudyGroupHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CreateStudyGroupRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	group, err := h.groups.Create(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create study group",
		Data:    fiber.Map{"id": group.ID},
	})
}

func (h *StudyGroupHandler) List(c *fiber.Ctx) error {
	page, err := h.groups.List(usecase.ListStudyGroupsQuery{
		Region:   c.Query("region"),
		Sort:     c.Query("sort"),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get study groups",
		Data:       dto.NewStudyGroupListDTOs(page.Groups),
		Pagination: response.NewPagination(page.Page, page.PageSize, page.Total, len(page.Groups)),
	})
}

func (h *StudyGroupHandler) Detail(c *fiber.Ctx) error {
	groupID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	group, err := h.groups.Detail(groupID)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get study group",
		Data:    dto.NewStudyGroupDetailDTO(group),
	})
}

func (h *StudyGroupHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateStudyGroupRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	if deadline := gjson.GetBytes(c.Body(), "recruitment_deadline"); deadline.Exists() && deadline.Type == gjson.Null {
		req.ClearDeadline = true
	}

	group, err := h.groups.Update(userID, groupID, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update study group",
		Data:    dto.NewStudyGroupDetailDTO(group),
	})
}

func (h *StudyGroupHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	groupID, err := paramUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.groups.Delete(userID, groupID); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete study group",
	})
}

func (h *StudyGroupHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	recs, err := h.recommendations.Recommend(userID)
	if err != nil {
		return respondError(c, err)
	}

	data := make([]dto.RecommendedStudyGroupDTO, 0, len(recs))
	for _, r := range recs {
		data = append(data, dto.RecommendedStudyGroupDTO{
			ID:                  r.Group.ID,
			Title:               r.Group.Title,
			Topic:               r.Group.Topic,
			CreatorNickname:     r.Group.Creator.Nickname,
			RecruitmentDeadline: dto.FormatDate(r.Group.RecruitmentDeadline),
			MatchScore:          r.Score,
			Breakdown:           r.Breakdown,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get recommendations",
		Data:    data,
	})
}

func (h *StudyGroupHandler) SemanticSearch(c *fiber.Ctx) error {
	groups, err := h.groups.SemanticSearch(c.UserContext(), c.Query("q"), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success semantic search",
		Data:    dto.NewStudyGroupListDTOs(groups),
	})
}
