package model

import (
	"time"

	"github.com/google/uuid"
)

type Interest struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_interest_user_group" json:"user_id"`
	StudyGroupID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_interest_user_group" json:"study_group_id"`
	StudyGroup   StudyGroup `gorm:"foreignKey:StudyGroupID;constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (i *Interest) TableName() string {
	return "interests"
}
