package dto

import (
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
)

// UpdateProfileRequest only changes the fields present in the body.
type UpdateProfileRequest struct {
	Nickname       *string   `json:"nickname" validate:"omitempty,min=2,max=50"`
	Career         *string   `json:"career" validate:"omitempty,oneof=NEWBIE JUNIOR SENIOR"`
	Job            *string   `json:"job" validate:"omitempty,max=100"`
	Goal           *string   `json:"goal" validate:"omitempty,max=2000"`
	StudyStyle     *string   `json:"study_style" validate:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	Region         *string   `json:"region" validate:"omitempty,max=100"`
	IsAvailableNow *bool     `json:"is_available_now"`
	Tags           *[]string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

type UserProfileDTO struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Nickname       string    `json:"nickname"`
	BirthDate      *string   `json:"birth_date"`
	Career         string    `json:"career,omitempty"`
	Job            string    `json:"job"`
	Goal           string    `json:"goal"`
	StudyStyle     string    `json:"study_style,omitempty"`
	Region         string    `json:"region"`
	IsAvailableNow bool      `json:"is_available_now"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewUserProfileDTO(u *model.User) UserProfileDTO {
	return UserProfileDTO{
		ID:             u.ID,
		Email:          u.Email,
		Nickname:       u.Nickname,
		BirthDate:      FormatDate(u.BirthDate),
		Career:         string(u.Career),
		Job:            u.Job,
		Goal:           u.Goal,
		StudyStyle:     string(u.StudyStyle),
		Region:         u.Region,
		IsAvailableNow: u.IsAvailableNow,
		Tags:           model.TagNames(u.Tags),
		CreatedAt:      u.CreatedAt,
	}
}
