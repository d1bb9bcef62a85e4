package repository

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(app *model.Application) error {
	return r.db.Omit("Applicant", "StudyGroup").Create(app).Error
}

func (r *ApplicationRepository) UpdateApplication(app *model.Application) error {
	return r.db.Omit("Applicant", "StudyGroup").Save(app).Error
}

// AcceptApplication marks app accepted and inserts member in one transaction.
func (r *ApplicationRepository) AcceptApplication(app *model.Application, member *model.StudyMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Applicant", "StudyGroup").Save(app).Error; err != nil {
			return err
		}
		return duplicateOr(tx.Omit("User").Create(member).Error)
	})
}

func (r *ApplicationRepository) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.
		Preload("Applicant").
		Preload("StudyGroup").
		Preload("StudyGroup.Members").
		First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) FindApplicationsByGroup(groupID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.
		Preload("Applicant").
		Where("study_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindApplicationsByApplicant(userID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.
		Preload("StudyGroup").
		Where("applicant_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) HasPending(userID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("applicant_id = ? AND study_group_id = ? AND status = ?", userID, groupID, model.ApplicationPending).
		Count(&count).Error
	return count > 0, err
}
