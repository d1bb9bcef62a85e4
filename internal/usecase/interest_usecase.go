package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestUsecase struct {
	interestRepo InterestRepository
	groupRepo    StudyGroupRepository
}

func NewInterestUsecase(interestRepo InterestRepository, groupRepo StudyGroupRepository) *InterestUsecase {
	return &InterestUsecase{interestRepo: interestRepo, groupRepo: groupRepo}
}

// Toggle bookmarks the group, or removes the bookmark when it exists. It
// reports whether the group is bookmarked afterwards.
func (uc *InterestUsecase) Toggle(userID, groupID uuid.UUID) (bool, error) {
	if _, err := uc.groupRepo.FindGroupByID(groupID); err != nil {
		return false, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}

	existing, err := uc.interestRepo.FindInterest(userID, groupID)
	switch {
	case err == nil:
		if err := uc.interestRepo.DeleteInterest(existing.ID); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		err := uc.interestRepo.CreateInterest(&model.Interest{UserID: userID, StudyGroupID: groupID})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return false, err
		}
		// A concurrent toggle may have inserted the same bookmark first.
		return true, nil
	default:
		return false, err
	}
}
