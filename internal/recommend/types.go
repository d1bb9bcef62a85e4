package recommend

import (
	"time"

	"github.com/google/uuid"
)

// Career is an ordered experience level.
type Career string

const (
	CareerNewbie Career = "NEWBIE"
	CareerJunior Career = "JUNIOR"
	CareerSenior Career = "SENIOR"
)

var careerRanks = map[Career]int{
	CareerNewbie: 0,
	CareerJunior: 1,
	CareerSenior: 2,
}

// Rank returns the ordinal of c. ok is false for empty or unknown levels.
func (c Career) Rank() (rank int, ok bool) {
	rank, ok = careerRanks[c]
	return rank, ok
}

// StudyStyle is the format a group meets in.
type StudyStyle string

const (
	StyleOnline  StudyStyle = "ONLINE"
	StyleOffline StudyStyle = "OFFLINE"
	StyleHybrid  StudyStyle = "HYBRID"
)

// UserProfile is the snapshot of a member used for one ranking call.
// Zero values mean "no signal" for the matching dimension.
type UserProfile struct {
	ID         uuid.UUID
	Goal       string
	Career     Career
	StudyStyle StudyStyle
	Region     string
	Tags       []string
}

// CandidateGroup is the snapshot of a study group considered for ranking.
type CandidateGroup struct {
	ID                  uuid.UUID
	Goal                string
	RequiredCareer      Career
	StudyStyle          StudyStyle
	Region              string
	Tags                []string
	RecruitmentDeadline *time.Time
}

// Breakdown holds the five dimension scores, each in [0,1].
type Breakdown struct {
	Goal   float64 `json:"goal"`
	Tag    float64 `json:"tag"`
	Career float64 `json:"career"`
	Style  float64 `json:"style"`
	Region float64 `json:"region"`
}

// MatchResult is one ranked candidate. Score is on the 0-100 scale.
type MatchResult struct {
	Group     CandidateGroup
	Score     float64
	Breakdown Breakdown
}
