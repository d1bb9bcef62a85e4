package repository

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db}
}

func (r *InterestRepository) FindInterest(userID, groupID uuid.UUID) (*model.Interest, error) {
	var i model.Interest
	err := r.db.First(&i, "user_id = ? AND study_group_id = ?", userID, groupID).Error
	return &i, err
}

func (r *InterestRepository) CreateInterest(i *model.Interest) error {
	return duplicateOr(r.db.Omit("StudyGroup").Create(i).Error)
}

func (r *InterestRepository) DeleteInterest(id uuid.UUID) error {
	return r.db.Delete(&model.Interest{}, "id = ?", id).Error
}

func (r *InterestRepository) FindInterestsByUser(userID uuid.UUID) ([]model.Interest, error) {
	var interests []model.Interest
	err := r.db.
		Preload("StudyGroup").
		Preload("StudyGroup.Creator").
		Preload("StudyGroup.Interests").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interests).Error
	return interests, err
}
