package dto

import (
	"github.com/fadilmartias/studylink/internal/recommend"
	"github.com/google/uuid"
)

type RecommendedStudyGroupDTO struct {
	ID                  uuid.UUID           `json:"id"`
	Title               string              `json:"title"`
	Topic               string              `json:"topic"`
	CreatorNickname     string              `json:"creator_nickname"`
	RecruitmentDeadline *string             `json:"recruitment_deadline"`
	MatchScore          float64             `json:"match_score"`
	Breakdown           recommend.Breakdown `json:"breakdown"`
}
