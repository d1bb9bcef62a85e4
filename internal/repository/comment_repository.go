package repository

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db}
}

func (r *CommentRepository) CreateComment(c *model.Comment) error {
	return r.db.Omit("StudyGroup", "Author", "Parent").Create(c).Error
}

func (r *CommentRepository) FindCommentByID(id uuid.UUID) (*model.Comment, error) {
	var c model.Comment
	err := r.db.Preload("Author").First(&c, "id = ?", id).Error
	return &c, err
}

// FindCommentsByGroup returns every comment of a group, oldest first.
func (r *CommentRepository) FindCommentsByGroup(groupID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.
		Preload("Author").
		Where("study_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteComment removes the comment; replies go with it via ON DELETE CASCADE.
func (r *CommentRepository) DeleteComment(id uuid.UUID) error {
	return r.db.Delete(&model.Comment{}, "id = ?", id).Error
}
