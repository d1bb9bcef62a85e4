package model

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicantID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant    User              `gorm:"foreignKey:ApplicantID" json:"-"`
	StudyGroupID uuid.UUID         `gorm:"type:uuid;not null;index" json:"study_group_id"`
	StudyGroup   StudyGroup        `gorm:"foreignKey:StudyGroupID;constraint:OnDelete:CASCADE;" json:"-"`
	Message      string            `gorm:"type:text" json:"message"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
