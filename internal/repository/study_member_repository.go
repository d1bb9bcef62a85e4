package repository

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyMemberRepository struct {
	db *gorm.DB
}

func NewStudyMemberRepository(db *gorm.DB) *StudyMemberRepository {
	return &StudyMemberRepository{db}
}

func (r *StudyMemberRepository) IsMember(userID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.StudyMember{}).
		Where("user_id = ? AND study_group_id = ?", userID, groupID).
		Count(&count).Error
	return count > 0, err
}

func (r *StudyMemberRepository) FindGroupIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&model.StudyMember{}).
		Where("user_id = ?", userID).
		Pluck("study_group_id", &ids).Error
	return ids, err
}

func (r *StudyMemberRepository) FindGroupsByMember(userID uuid.UUID) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.
		Preload("Creator").
		Preload("Tags").
		Preload("Members").
		Joins("JOIN study_members sm ON sm.study_group_id = study_groups.id").
		Where("sm.user_id = ?", userID).
		Order("sm.joined_at DESC").
		Find(&groups).Error
	return groups, err
}
