package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string) (string, error)
	TTL() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type AuthUsecase struct {
	userRepo UserRepository
	tagRepo  TagRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
}

func NewAuthUsecase(userRepo UserRepository, tagRepo TagRepository, tokens TokenIssuer, hasher PasswordHasher) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, tagRepo: tagRepo, tokens: tokens, hasher: hasher}
}

func (uc *AuthUsecase) Signup(req dto.SignupRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	nickname := strings.TrimSpace(req.Nickname)

	exists, err := uc.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email %q already registered: %w", email, ErrConflict)
	}
	exists, err = uc.userRepo.ExistsByNickname(nickname)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("nickname %q already taken: %w", nickname, ErrConflict)
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("birth_date: %w", ErrInvalidInput)
	}

	hashed, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	tags, err := resolveTags(uc.tagRepo, req.Tags)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:      email,
		Password:   hashed,
		Nickname:   nickname,
		BirthDate:  birthDate,
		Career:     model.Career(req.Career),
		Job:        req.Job,
		Goal:       req.Goal,
		StudyStyle: model.StudyStyle(req.StudyStyle),
		Region:     strings.TrimSpace(req.Region),
		Tags:       tags,
	}
	if err := uc.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email or nickname already registered: %w", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.userRepo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !uc.hasher.Matches(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(uc.tokens.TTL().Seconds()),
	}, nil
}
