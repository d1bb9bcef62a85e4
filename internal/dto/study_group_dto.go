package dto

import (
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
)

type CreateStudyGroupRequest struct {
	Title               string   `json:"title" validate:"required,max=200"`
	Topic               string   `json:"topic" validate:"max=100"`
	Description         string   `json:"description" validate:"max=5000"`
	Goal                string   `json:"goal" validate:"max=2000"`
	MaxMembers          int      `json:"max_members" validate:"gte=0,lte=1000"`
	RecruitmentDeadline *string  `json:"recruitment_deadline" validate:"omitempty,datetime=2006-01-02"`
	StudyStyle          string   `json:"study_style" validate:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	RequiredCareer      string   `json:"required_career" validate:"omitempty,oneof=NEWBIE JUNIOR SENIOR"`
	Region              string   `json:"region" validate:"max=100"`
	Tags                []string `json:"tags" validate:"max=20,dive,max=50"`
}

// UpdateStudyGroupRequest only changes the fields present in the body.
type UpdateStudyGroupRequest struct {
	Title               *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Topic               *string   `json:"topic" validate:"omitempty,max=100"`
	Description         *string   `json:"description" validate:"omitempty,max=5000"`
	Goal                *string   `json:"goal" validate:"omitempty,max=2000"`
	MaxMembers          *int      `json:"max_members" validate:"omitempty,gte=0,lte=1000"`
	RecruitmentDeadline *string   `json:"recruitment_deadline" validate:"omitempty,datetime=2006-01-02"`
	StudyStyle          *string   `json:"study_style" validate:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	RequiredCareer      *string   `json:"required_career" validate:"omitempty,oneof=NEWBIE JUNIOR SENIOR"`
	Region              *string   `json:"region" validate:"omitempty,max=100"`
	Tags                *[]string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	// ClearDeadline is set when the body carries an explicit null deadline.
	ClearDeadline bool `json:"-"`
}

type StudyGroupListDTO struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Topic               string    `json:"topic"`
	CreatorNickname     string    `json:"creator_nickname"`
	RecruitmentDeadline *string   `json:"recruitment_deadline"`
	Region              string    `json:"region"`
	StudyStyle          string    `json:"study_style,omitempty"`
	Tags                []string  `json:"tags"`
	CurrentMembers      int       `json:"current_members"`
	MaxMembers          int       `json:"max_members"`
	ViewCount           int       `json:"view_count"`
	InterestCount       int       `json:"interest_count"`
}

func NewStudyGroupListDTO(g *model.StudyGroup) StudyGroupListDTO {
	return StudyGroupListDTO{
		ID:                  g.ID,
		Title:               g.Title,
		Topic:               g.Topic,
		CreatorNickname:     g.Creator.Nickname,
		RecruitmentDeadline: FormatDate(g.RecruitmentDeadline),
		Region:              g.Region,
		StudyStyle:          string(g.StudyStyle),
		Tags:                model.TagNames(g.Tags),
		CurrentMembers:      len(g.Members),
		MaxMembers:          g.MaxMembers,
		ViewCount:           g.ViewCount,
		InterestCount:       len(g.Interests),
	}
}

func NewStudyGroupListDTOs(groups []model.StudyGroup) []StudyGroupListDTO {
	out := make([]StudyGroupListDTO, 0, len(groups))
	for i := range groups {
		out = append(out, NewStudyGroupListDTO(&groups[i]))
	}
	return out
}

type StudyGroupDetailDTO struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Topic               string    `json:"topic"`
	Description         string    `json:"description"`
	Goal                string    `json:"goal"`
	CurrentMembers      int       `json:"current_members"`
	MaxMembers          int       `json:"max_members"`
	Region              string    `json:"region"`
	StudyStyle          string    `json:"study_style,omitempty"`
	RequiredCareer      string    `json:"required_career,omitempty"`
	Tags                []string  `json:"tags"`
	CreatorID           uuid.UUID `json:"creator_id"`
	CreatorNickname     string    `json:"creator_nickname"`
	RecruitmentDeadline *string   `json:"recruitment_deadline"`
	ViewCount           int       `json:"view_count"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewStudyGroupDetailDTO(g *model.StudyGroup) StudyGroupDetailDTO {
	return StudyGroupDetailDTO{
		ID:                  g.ID,
		Title:               g.Title,
		Topic:               g.Topic,
		Description:         g.Description,
		Goal:                g.Goal,
		CurrentMembers:      len(g.Members),
		MaxMembers:          g.MaxMembers,
		Region:              g.Region,
		StudyStyle:          string(g.StudyStyle),
		RequiredCareer:      string(g.RequiredCareer),
		Tags:                model.TagNames(g.Tags),
		CreatorID:           g.CreatorID,
		CreatorNickname:     g.Creator.Nickname,
		RecruitmentDeadline: FormatDate(g.RecruitmentDeadline),
		ViewCount:           g.ViewCount,
		CreatedAt:           g.CreatedAt,
	}
}
