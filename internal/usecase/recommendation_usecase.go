package usecase

import (
	"fmt"
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/recommend"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recommendation pairs a stored group with its match result.
type Recommendation struct {
	Group     *model.StudyGroup
	Score     float64
	Breakdown recommend.Breakdown
}

type RecommendationUsecase struct {
	engine     *recommend.Engine
	userRepo   UserRepository
	groupRepo  StudyGroupRepository
	memberRepo StudyMemberRepository
	limit      int
	log        *zap.Logger
	now        func() time.Time
}

func NewRecommendationUsecase(
	engine *recommend.Engine,
	userRepo UserRepository,
	groupRepo StudyGroupRepository,
	memberRepo StudyMemberRepository,
	limit int,
	log *zap.Logger,
) *RecommendationUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendationUsecase{
		engine:     engine,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		limit:      limit,
		log:        log,
		now:        time.Now,
	}
}

// Recommend ranks every study group for the user. Groups the user already
// joined or created are excluded.
func (uc *RecommendationUsecase) Recommend(userID uuid.UUID) ([]Recommendation, error) {
	user, err := uc.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, notFoundOr(err))
	}

	joined, err := uc.memberRepo.FindGroupIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	groups, err := uc.groupRepo.FindAllWithTags()
	if err != nil {
		return nil, err
	}

	excluded := make(map[uuid.UUID]struct{}, len(joined))
	for _, id := range joined {
		excluded[id] = struct{}{}
	}
	byID := make(map[uuid.UUID]*model.StudyGroup, len(groups))
	candidates := make([]recommend.CandidateGroup, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		if g.CreatorID == userID {
			excluded[g.ID] = struct{}{}
		}
		byID[g.ID] = g
		candidates = append(candidates, toCandidate(g))
	}

	matches := uc.engine.Recommend(toProfile(user), candidates, excluded, uc.now())
	if uc.limit > 0 && len(matches) > uc.limit {
		matches = matches[:uc.limit]
	}

	out := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		out = append(out, Recommendation{Group: byID[m.Group.ID], Score: m.Score, Breakdown: m.Breakdown})
	}

	uc.log.Info("recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("excluded", len(excluded)),
		zap.Int("results", len(out)))
	return out, nil
}

func toProfile(u *model.User) recommend.UserProfile {
	return recommend.UserProfile{
		ID:         u.ID,
		Goal:       u.Goal,
		Career:     recommend.Career(u.Career),
		StudyStyle: recommend.StudyStyle(u.StudyStyle),
		Region:     u.Region,
		Tags:       model.TagNames(u.Tags),
	}
}

func toCandidate(g *model.StudyGroup) recommend.CandidateGroup {
	return recommend.CandidateGroup{
		ID:                  g.ID,
		Goal:                g.Goal,
		RequiredCareer:      recommend.Career(g.RequiredCareer),
		StudyStyle:          recommend.StudyStyle(g.StudyStyle),
		Region:              g.Region,
		Tags:                model.TagNames(g.Tags),
		RecruitmentDeadline: g.RecruitmentDeadline,
	}
}
