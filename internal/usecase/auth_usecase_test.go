package usecase

import (
	"testing"
	"time"

	"github.com/fadilmartias/studylink/internal/auth"
	"github.com/fadilmartias/studylink/internal/dto"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T, s *memStore) (*AuthUsecase, *auth.JWTManager) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)
	uc := NewAuthUsecase(fakeUserRepo{s}, fakeTagRepo{s}, jwtManager, auth.NewPasswordHasher(bcrypt.MinCost))
	return uc, jwtManager
}

func signupRequest() dto.SignupRequest {
	birth := "1995-04-12"
	return dto.SignupRequest{
		Email:      " Alice@Example.com ",
		Password:   "correct-horse",
		Nickname:   "alice",
		BirthDate:  &birth,
		Career:     "JUNIOR",
		Goal:       "golang backend",
		StudyStyle: "ONLINE",
		Region:     "Seoul",
		Tags:       []string{" Go ", "go", "Spring Boot", ""},
	}
}

func TestAuthUsecase_Signup(t *testing.T) {
	s := newMemStore()
	uc, _ := newAuthUsecase(t, s)

	user, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.Password)
	assert.Equal(t, model.CareerJunior, user.Career)
	assert.Equal(t, []string{"go", "springboot"}, model.TagNames(user.Tags))
	require.NotNil(t, user.BirthDate)
	assert.Equal(t, "1995-04-12", user.BirthDate.Format(time.DateOnly))
}

func TestAuthUsecase_Signup_Conflicts(t *testing.T) {
	s := newMemStore()
	uc, _ := newAuthUsecase(t, s)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	_, err = uc.Signup(signupRequest())
	assert.ErrorIs(t, err, ErrConflict)

	other := signupRequest()
	other.Email = "bob@example.com"
	_, err = uc.Signup(other)
	assert.ErrorIs(t, err, ErrConflict, "nickname already taken")
}

func TestAuthUsecase_Signup_DuplicateOnInsert(t *testing.T) {
	s := newMemStore()
	jwtManager, err := auth.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)
	uc := NewAuthUsecase(duplicateUserRepo{fakeUserRepo{s}}, fakeTagRepo{s}, jwtManager, auth.NewPasswordHasher(bcrypt.MinCost))

	_, err = uc.Signup(signupRequest())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, s.users)
}

func TestAuthUsecase_Login(t *testing.T) {
	s := newMemStore()
	uc, jwtManager := newAuthUsecase(t, s)
	user, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ALICE@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	userID, claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	s := newMemStore()
	uc, _ := newAuthUsecase(t, s)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
