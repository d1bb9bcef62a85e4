package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudyGroupID uuid.UUID  `gorm:"type:uuid;not null;index" json:"study_group_id"`
	StudyGroup   StudyGroup `gorm:"foreignKey:StudyGroupID;constraint:OnDelete:CASCADE;" json:"-"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null" json:"author_id"`
	Author       User       `gorm:"foreignKey:AuthorID" json:"-"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	Parent       *Comment   `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;" json:"-"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (c *Comment) TableName() string {
	return "comments"
}
