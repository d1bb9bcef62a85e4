package model

import (
	"time"

	"github.com/google/uuid"
)

type StudyMember struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_group" json:"user_id"`
	StudyGroupID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_group" json:"study_group_id"`
	Role         MemberRole `gorm:"type:varchar(20);not null" json:"role"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	JoinedAt     time.Time  `gorm:"autoCreateTime" json:"joined_at"`
}

func (m *StudyMember) TableName() string {
	return "study_members"
}
