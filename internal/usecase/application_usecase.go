package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/google/uuid"
)

type ApplicationUsecase struct {
	applicationRepo ApplicationRepository
	groupRepo       StudyGroupRepository
	memberRepo      StudyMemberRepository
}

func NewApplicationUsecase(applicationRepo ApplicationRepository, groupRepo StudyGroupRepository, memberRepo StudyMemberRepository) *ApplicationUsecase {
	return &ApplicationUsecase{applicationRepo: applicationRepo, groupRepo: groupRepo, memberRepo: memberRepo}
}

func (uc *ApplicationUsecase) Apply(userID, groupID uuid.UUID, req dto.ApplyRequest) (*model.Application, error) {
	group, err := uc.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}
	if group.CreatorID == userID {
		return nil, fmt.Errorf("cannot apply to own study group: %w", ErrInvalidInput)
	}

	member, err := uc.memberRepo.IsMember(userID, groupID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, fmt.Errorf("already a member: %w", ErrConflict)
	}
	pending, err := uc.applicationRepo.HasPending(userID, groupID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("application already pending: %w", ErrConflict)
	}
	if group.IsFull() {
		return nil, fmt.Errorf("study group is full: %w", ErrConflict)
	}

	app := &model.Application{
		ApplicantID:  userID,
		StudyGroupID: groupID,
		Message:      req.Message,
		Status:       model.ApplicationPending,
	}
	if err := uc.applicationRepo.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForGroup returns the applications of a group to its creator.
func (uc *ApplicationUsecase) ListForGroup(userID, groupID uuid.UUID) ([]model.Application, error) {
	group, err := uc.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("find study group %s: %w", groupID, notFoundOr(err))
	}
	if group.CreatorID != userID {
		return nil, fmt.Errorf("only the creator can list applications: %w", ErrForbidden)
	}
	return uc.applicationRepo.FindApplicationsByGroup(groupID)
}

// Process accepts or rejects a pending application. Accepting adds the
// applicant as a MEMBER.
func (uc *ApplicationUsecase) Process(userID, groupID, applicationID uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	if status != model.ApplicationAccepted && status != model.ApplicationRejected {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}

	app, err := uc.applicationRepo.FindApplicationByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("find application %s: %w", applicationID, notFoundOr(err))
	}
	if app.StudyGroupID != groupID {
		return nil, fmt.Errorf("application %s is not for study group %s: %w", applicationID, groupID, ErrNotFound)
	}
	if app.StudyGroup.CreatorID != userID {
		return nil, fmt.Errorf("only the creator can process applications: %w", ErrForbidden)
	}
	if app.Status != model.ApplicationPending {
		return nil, fmt.Errorf("application already %s: %w", app.Status, ErrConflict)
	}

	if status == model.ApplicationRejected {
		app.Status = status
		if err := uc.applicationRepo.UpdateApplication(app); err != nil {
			return nil, err
		}
		return app, nil
	}

	if app.StudyGroup.IsFull() {
		return nil, fmt.Errorf("study group is full: %w", ErrConflict)
	}
	app.Status = status
	member := &model.StudyMember{
		UserID:       app.ApplicantID,
		StudyGroupID: app.StudyGroupID,
		Role:         model.RoleMember,
	}
	if err := uc.applicationRepo.AcceptApplication(app, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("user %s already a member: %w", app.ApplicantID, ErrConflict)
		}
		return nil, err
	}
	return app, nil
}
