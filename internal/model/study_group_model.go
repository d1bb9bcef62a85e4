package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the size of the goal embedding column.
const EmbeddingDimensions = 768

type StudyGroup struct {
	ID                  uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title               string           `gorm:"type:varchar(200);not null" json:"title"`
	Topic               string           `gorm:"type:varchar(100)" json:"topic"`
	Description         string           `gorm:"type:text" json:"description"`
	Goal                string           `gorm:"type:text" json:"goal"`
	MaxMembers          int              `gorm:"column:member_count" json:"max_members"`
	RecruitmentDeadline *time.Time       `gorm:"type:date;index" json:"recruitment_deadline"`
	Region              string           `gorm:"type:varchar(100);index" json:"region"`
	StudyStyle          StudyStyle       `gorm:"type:varchar(20)" json:"study_style"`
	RequiredCareer      Career           `gorm:"type:varchar(20)" json:"required_career"`
	ViewCount           int              `gorm:"default:0" json:"view_count"`
	CreatorID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"creator_id"`
	Creator             User             `gorm:"foreignKey:CreatorID" json:"creator"`
	Tags                []Tag            `gorm:"many2many:study_group_tags;" json:"tags"`
	Members             []StudyMember    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Interests           []Interest       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Embedding           *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func (g *StudyGroup) TableName() string {
	return "study_groups"
}

func (g *StudyGroup) IsFull() bool {
	return g.MaxMembers > 0 && len(g.Members) >= g.MaxMembers
}
