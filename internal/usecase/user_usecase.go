package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
)

type UserUsecase struct {
	userRepo        UserRepository
	tagRepo         TagRepository
	groupRepo       StudyGroupRepository
	memberRepo      StudyMemberRepository
	applicationRepo ApplicationRepository
	interestRepo    InterestRepository
}

func NewUserUsecase(
	userRepo UserRepository,
	tagRepo TagRepository,
	groupRepo StudyGroupRepository,
	memberRepo StudyMemberRepository,
	applicationRepo ApplicationRepository,
	interestRepo InterestRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tagRepo:         tagRepo,
		groupRepo:       groupRepo,
		memberRepo:      memberRepo,
		applicationRepo: applicationRepo,
		interestRepo:    interestRepo,
	}
}

func (uc *UserUsecase) GetProfile(userID uuid.UUID) (*model.User, error) {
	user, err := uc.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, notFoundOr(err))
	}
	return user, nil
}

func (uc *UserUsecase) UpdateProfile(userID uuid.UUID, req dto.UpdateProfileRequest) (*model.User, error) {
	user, err := uc.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		nickname := strings.TrimSpace(*req.Nickname)
		if nickname != user.Nickname {
			taken, err := uc.userRepo.ExistsByNickname(nickname)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("nickname %q already taken: %w", nickname, ErrConflict)
			}
			user.Nickname = nickname
		}
	}
	if req.Career != nil {
		user.Career = model.Career(*req.Career)
	}
	if req.Job != nil {
		user.Job = *req.Job
	}
	if req.Goal != nil {
		user.Goal = *req.Goal
	}
	if req.StudyStyle != nil {
		user.StudyStyle = model.StudyStyle(*req.StudyStyle)
	}
	if req.Region != nil {
		user.Region = strings.TrimSpace(*req.Region)
	}
	if req.IsAvailableNow != nil {
		user.IsAvailableNow = *req.IsAvailableNow
	}

	if err := uc.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		tags, err := resolveTags(uc.tagRepo, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := uc.userRepo.ReplaceTags(user, tags); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (uc *UserUsecase) MyApplications(userID uuid.UUID) ([]model.Application, error) {
	return uc.applicationRepo.FindApplicationsByApplicant(userID)
}

func (uc *UserUsecase) ParticipatingGroups(userID uuid.UUID) ([]model.StudyGroup, error) {
	return uc.memberRepo.FindGroupsByMember(userID)
}

func (uc *UserUsecase) CreatedGroups(userID uuid.UUID) ([]model.StudyGroup, error) {
	return uc.groupRepo.FindGroupsByCreator(userID)
}

// InterestedGroups returns bookmarked groups, newest bookmark first.
func (uc *UserUsecase) InterestedGroups(userID uuid.UUID) ([]model.StudyGroup, error) {
	interests, err := uc.interestRepo.FindInterestsByUser(userID)
	if err != nil {
		return nil, err
	}
	groups := make([]model.StudyGroup, 0, len(interests))
	for _, i := range interests {
		groups = append(groups, i.StudyGroup)
	}
	return groups, nil
}
