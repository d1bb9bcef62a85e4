package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/fadilmartias/studylink/internal/service"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const (
	defaultPageSize    = 10
	maxPageSize        = 100
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	embeddingTimeout   = 30 * time.Second
)

type ListStudyGroupsQuery struct {
	Region   string
	Sort     string
	Search   string
	Page     int
	PageSize int
}

type StudyGroupPage struct {
	Groups   []model.StudyGroup
	Total    int64
	Page     int
	PageSize int
}

type StudyGroupUsecase struct {
	groupRepo StudyGroupRepository
	tagRepo   TagRepository
	embedder  service.EmbeddingServiceInterface
	log       *zap.Logger
	now       func() time.Time
}

// NewStudyGroupUsecase accepts a nil embedder; semantic search is then
// unavailable and embeddings are never refreshed.
func NewStudyGroupUsecase(groupRepo StudyGroupRepository, tagRepo TagRepository, embedder service.EmbeddingServiceInterface, log *zap.Logger) *StudyGroupUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &StudyGroupUsecase{
		groupRepo: groupRepo,
		tagRepo:   tagRepo,
		embedder:  embedder,
		log:       log,
		now:       time.Now,
	}
}

func (uc *StudyGroupUsecase) Create(creatorID uuid.UUID, req dto.CreateStudyGroupRequest) (*model.StudyGroup, error) {
	deadline, err := dto.ParseDate(req.RecruitmentDeadline)
	if err != nil {
		return nil, fmt.Errorf("recruitment_deadline: %w", ErrInvalidInput)
	}
	tags, err := resolveTags(uc.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	group := &model.StudyGroup{
		Title:               strings.TrimSpace(req.Title),
		Topic:               req.Topic,
		Description:         req.Description,
		Goal:                req.Goal,
		MaxMembers:          req.MaxMembers,
		RecruitmentDeadline: deadline,
		Region:              strings.TrimSpace(req.Region),
		StudyStyle:          model.StudyStyle(req.StudyStyle),
		RequiredCareer:      model.Career(req.RequiredCareer),
		CreatorID:           creatorID,
		Tags:                tags,
	}
	leader := &model.StudyMember{UserID: creatorID, Role: model.RoleLeader}
	if err := uc.groupRepo.CreateGroup(group, leader); err != nil {
		return nil, err
	}
	group.Members = []model.StudyMember{*leader}

	uc.scheduleEmbeddingRefresh(group)
	return group, nil
}

func (uc *StudyGroupUsecase) List(q ListStudyGroupsQuery) (*StudyGroupPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	sort := q.Sort
	switch sort {
	case repository.SortLatest, repository.SortPopular, repository.SortDeadline:
	case "":
		sort = repository.SortLatest
	default:
		return nil, fmt.Errorf("unknown sort %q: %w", q.Sort, ErrInvalidInput)
	}

	groups, total, err := uc.groupRepo.FindGroups(repository.StudyGroupFilter{
		Region:   strings.TrimSpace(q.Region),
		Search:   q.Search,
		Sort:     sort,
		Page:     page,
		PageSize: size,
		Today:    uc.now(),
	})
	if err != nil {
		return nil, err
	}
	return &StudyGroupPage{Groups: groups, Total: total, Page: page, PageSize: size}, nil
}

// Detail returns the group and counts the view.
func (uc *StudyGroupUsecase) Detail(groupID uuid.UUID) (*model.StudyGroup, error) {
	group, err := uc.find(groupID)
	if err != nil {
		return nil, err
	}
	if err := uc.groupRepo.IncrementViewCount(groupID); err != nil {
		return nil, err
	}
	group.ViewCount++
	return group, nil
}

func (uc *StudyGroupUsecase) Update(userID, groupID uuid.UUID, req dto.UpdateStudyGroupRequest) (*model.StudyGroup, error) {
	group, err := uc.findOwned(userID, groupID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		group.Title = strings.TrimSpace(*req.Title)
	}
	if req.Topic != nil {
		group.Topic = *req.Topic
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Goal != nil {
		group.Goal = *req.Goal
	}
	if req.MaxMembers != nil {
		group.MaxMembers = *req.MaxMembers
	}
	if req.ClearDeadline {
		group.RecruitmentDeadline = nil
	} else if req.RecruitmentDeadline != nil {
		deadline, err := dto.ParseDate(req.RecruitmentDeadline)
		if err != nil {
			return nil, fmt.Errorf("recruitment_deadline: %w", ErrInvalidInput)
		}
		group.RecruitmentDeadline = deadline
	}
	if req.StudyStyle != nil {
		group.StudyStyle = model.StudyStyle(*req.StudyStyle)
	}
	if req.RequiredCareer != nil {
		group.RequiredCareer = model.Career(*req.RequiredCareer)
	}
	if req.Region != nil {
		group.Region = strings.TrimSpace(*req.Region)
	}

	if err := uc.groupRepo.UpdateGroup(group); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		tags, err := resolveTags(uc.tagRepo, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := uc.groupRepo.ReplaceTags(group, tags); err != nil {
			return nil, err
		}
	}

	uc.scheduleEmbeddingRefresh(group)
	return group, nil
}

func (uc *StudyGroupUsecase) Delete(userID, groupID uuid.UUID) error {
	if _, err := uc.findOwned(userID, groupID); err != nil {
		return err
	}
	return uc.groupRepo.DeleteGroup(groupID)
}

// SemanticSearch returns the groups whose stored embedding is closest to the
// embedding of query.
func (uc *StudyGroupUsecase) SemanticSearch(ctx context.Context, query string, limit int) ([]model.StudyGroup, error) {
	if uc.embedder == nil {
		return nil, ErrEmbeddingUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query: %w", ErrInvalidInput)
	}
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	values, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %v: %w", err, ErrEmbeddingUnavailable)
	}
	return uc.groupRepo.SearchByEmbedding(pgvector.NewVector(values), limit)
}

// RefreshEmbedding recomputes and stores the embedding of a group's text.
func (uc *StudyGroupUsecase) RefreshEmbedding(ctx context.Context, group *model.StudyGroup) error {
	if uc.embedder == nil {
		return ErrEmbeddingUnavailable
	}
	values, err := uc.embedder.GenerateEmbedding(ctx, embeddingText(group))
	if err != nil {
		return err
	}
	return uc.groupRepo.UpdateEmbedding(group.ID, pgvector.NewVector(values))
}

func (uc *StudyGroupUsecase) scheduleEmbeddingRefresh(group *model.StudyGroup) {
	if uc.embedder == nil {
		return
	}
	snapshot := *group
	snapshot.Tags = append([]model.Tag(nil), group.Tags...)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), embeddingTimeout)
		defer cancel()
		if err := uc.RefreshEmbedding(ctx, &snapshot); err != nil {
			uc.log.Warn("refresh study group embedding failed",
				zap.String("study_group_id", snapshot.ID.String()),
				zap.Error(err))
			return
		}
		uc.log.Debug("study group embedding refreshed", zap.String("study_group_id", snapshot.ID.String()))
	}()
}

func (uc *StudyGroupUsecase) find(groupID uuid.UUID) (*model.StudyGroup, error) {
	group, err := uc.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}
	return group, nil
}

func (uc *StudyGroupUsecase) findOwned(userID, groupID uuid.UUID) (*model.StudyGroup, error) {
	group, err := uc.find(groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatorID != userID {
		return nil, fmt.Errorf("study group %s belongs to another user: %w", groupID, ErrForbidden)
	}
	return group, nil
}

func embeddingText(g *model.StudyGroup) string {
	parts := []string{g.Title, g.Topic, g.Goal, g.Description}
	if names := model.TagNames(g.Tags); len(names) > 0 {
		parts = append(parts, strings.Join(names, " "))
	}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
