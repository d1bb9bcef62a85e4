package dto

import (
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
)

type ApplyRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

type ProcessApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}

type ApplicationDTO struct {
	ApplicationID     uuid.UUID `json:"application_id"`
	ApplicantID       uuid.UUID `json:"applicant_id"`
	ApplicantNickname string    `json:"applicant_nickname"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	AppliedAt         time.Time `json:"applied_at"`
}

func NewApplicationDTOs(apps []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationDTO{
			ApplicationID:     a.ID,
			ApplicantID:       a.ApplicantID,
			ApplicantNickname: a.Applicant.Nickname,
			Message:           a.Message,
			Status:            string(a.Status),
			AppliedAt:         a.CreatedAt,
		})
	}
	return out
}

type MemberApplicationDTO struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	StudyGroupID    uuid.UUID `json:"study_group_id"`
	StudyGroupTitle string    `json:"study_group_title"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
}

func NewMemberApplicationDTOs(apps []model.Application) []MemberApplicationDTO {
	out := make([]MemberApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, MemberApplicationDTO{
			ApplicationID:   a.ID,
			StudyGroupID:    a.StudyGroupID,
			StudyGroupTitle: a.StudyGroup.Title,
			Message:         a.Message,
			Status:          string(a.Status),
			AppliedAt:       a.CreatedAt,
		})
	}
	return out
}
