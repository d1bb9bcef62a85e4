package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"type:varchar(255);not null" json:"-"`
	Nickname       string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"nickname"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date"`
	Career         Career     `gorm:"type:varchar(20)" json:"career"`
	Job            string     `gorm:"type:varchar(100)" json:"job"`
	Goal           string     `gorm:"type:text" json:"goal"`
	StudyStyle     StudyStyle `gorm:"type:varchar(20)" json:"study_style"`
	Region         string     `gorm:"type:varchar(100)" json:"region"`
	IsAvailableNow bool       `gorm:"default:false" json:"is_available_now"`
	Tags           []Tag      `gorm:"many2many:user_tags;" json:"tags"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
