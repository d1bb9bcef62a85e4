package usecase

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// The interfaces below are satisfied by the gorm repositories in
// internal/repository.

type UserRepository interface {
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
	ReplaceTags(user *model.User, tags []model.Tag) error
	FindUserByID(id uuid.UUID) (*model.User, error)
	FindUserByEmail(email string) (*model.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByNickname(nickname string) (bool, error)
}

type TagRepository interface {
	FindOrCreateTags(names []string) ([]model.Tag, error)
}

type StudyGroupRepository interface {
	CreateGroup(group *model.StudyGroup, leader *model.StudyMember) error
	UpdateGroup(group *model.StudyGroup) error
	ReplaceTags(group *model.StudyGroup, tags []model.Tag) error
	DeleteGroup(id uuid.UUID) error
	FindGroupByID(id uuid.UUID) (*model.StudyGroup, error)
	IncrementViewCount(id uuid.UUID) error
	FindGroups(f repository.StudyGroupFilter) ([]model.StudyGroup, int64, error)
	FindAllWithTags() ([]model.StudyGroup, error)
	FindGroupsByCreator(userID uuid.UUID) ([]model.StudyGroup, error)
	UpdateEmbedding(id uuid.UUID, embedding pgvector.Vector) error
	SearchByEmbedding(embedding pgvector.Vector, topK int) ([]model.StudyGroup, error)
}

type StudyMemberRepository interface {
	IsMember(userID, groupID uuid.UUID) (bool, error)
	FindGroupIDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
	FindGroupsByMember(userID uuid.UUID) ([]model.StudyGroup, error)
}

type ApplicationRepository interface {
	CreateApplication(app *model.Application) error
	UpdateApplication(app *model.Application) error
	AcceptApplication(app *model.Application, member *model.StudyMember) error
	FindApplicationByID(id uuid.UUID) (*model.Application, error)
	FindApplicationsByGroup(groupID uuid.UUID) ([]model.Application, error)
	FindApplicationsByApplicant(userID uuid.UUID) ([]model.Application, error)
	HasPending(userID, groupID uuid.UUID) (bool, error)
}

type CommentRepository interface {
	CreateComment(c *model.Comment) error
	FindCommentByID(id uuid.UUID) (*model.Comment, error)
	FindCommentsByGroup(groupID uuid.UUID) ([]model.Comment, error)
	DeleteComment(id uuid.UUID) error
}

type InterestRepository interface {
	FindInterest(userID, groupID uuid.UUID) (*model.Interest, error)
	CreateInterest(i *model.Interest) error
	DeleteInterest(id uuid.UUID) error
	FindInterestsByUser(userID uuid.UUID) ([]model.Interest, error)
}

var (
	_ UserRepository        = (*repository.UserRepository)(nil)
	_ TagRepository         = (*repository.TagRepository)(nil)
	_ StudyGroupRepository  = (*repository.StudyGroupRepository)(nil)
	_ StudyMemberRepository = (*repository.StudyMemberRepository)(nil)
	_ ApplicationRepository = (*repository.ApplicationRepository)(nil)
	_ CommentRepository     = (*repository.CommentRepository)(nil)
	_ InterestRepository    = (*repository.InterestRepository)(nil)
)
