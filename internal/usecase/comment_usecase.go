package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
)

type CommentUsecase struct {
	commentRepo CommentRepository
	groupRepo   StudyGroupRepository
}

func NewCommentUsecase(commentRepo CommentRepository, groupRepo StudyGroupRepository) *CommentUsecase {
	return &CommentUsecase{commentRepo: commentRepo, groupRepo: groupRepo}
}

func (uc *CommentUsecase) Create(userID, groupID uuid.UUID, req dto.CommentRequest) (*model.Comment, error) {
	if _, err := uc.groupRepo.FindGroupByID(groupID); err != nil {
		return nil, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("empty comment: %w", ErrInvalidInput)
	}

	if req.ParentID != nil {
		parent, err := uc.commentRepo.FindCommentByID(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("find parent comment %s: %w", *req.ParentID, notFoundOr(err))
		}
		if parent.StudyGroupID != groupID {
			return nil, fmt.Errorf("parent comment belongs to another study group: %w", ErrInvalidInput)
		}
	}

	c := &model.Comment{
		StudyGroupID: groupID,
		AuthorID:     userID,
		ParentID:     req.ParentID,
		Content:      content,
	}
	if err := uc.commentRepo.CreateComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Thread returns the comments of a group as a forest: top-level comments
// newest first, replies nested under their parent oldest first.
func (uc *CommentUsecase) Thread(groupID uuid.UUID) ([]dto.CommentDTO, error) {
	if _, err := uc.groupRepo.FindGroupByID(groupID); err != nil {
		return nil, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}
	comments, err := uc.commentRepo.FindCommentsByGroup(groupID)
	if err != nil {
		return nil, err
	}
	return buildCommentTree(comments), nil
}

func (uc *CommentUsecase) Delete(userID, commentID uuid.UUID) error {
	c, err := uc.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return fmt.Errorf("find comment %s: %w", commentID, notFoundOr(err))
	}
	if c.AuthorID != userID {
		return fmt.Errorf("only the author can delete a comment: %w", ErrForbidden)
	}
	return uc.commentRepo.DeleteComment(commentID)
}

// buildCommentTree expects comments ordered oldest first. Replies whose parent
// is missing are dropped.
func buildCommentTree(comments []model.Comment) []dto.CommentDTO {
	children := make(map[uuid.UUID][]model.Comment)
	var roots []model.Comment
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var build func(c model.Comment) dto.CommentDTO
	build = func(c model.Comment) dto.CommentDTO {
		node := dto.CommentDTO{
			ID:             c.ID,
			Content:        c.Content,
			AuthorID:       c.AuthorID,
			AuthorNickname: c.Author.Nickname,
			CreatedAt:      c.CreatedAt,
			Children:       []dto.CommentDTO{},
		}
		for _, child := range children[c.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	out := make([]dto.CommentDTO, 0, len(roots))
	for _, r := range roots {
		out = append(out, build(r))
	}
	return out
}
