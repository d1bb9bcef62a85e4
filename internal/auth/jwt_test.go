package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.Error(t, err)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager("a-secret-that-is-long-enough-for-hs256", time.Hour)
	require.NoError(t, err)

	id := uuid.New()
	token, err := m.GenerateToken(id, "member@studylink.dev")
	require.NoError(t, err)

	gotID, claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "member@studylink.dev", claims.Email)
}

func TestJWTManager_Rejects(t *testing.T) {
	m, err := NewJWTManager("secret-one", time.Minute)
	require.NoError(t, err)
	other, err := NewJWTManager("secret-two", time.Minute)
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), "x@y.z")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, _, err := m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := m.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := m.GenerateToken(uuid.New(), "x@y.z")
		require.NoError(t, err)
		m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		defer func() { m.now = time.Now }()

		_, _, err = m.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, _, err = m.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, h.Matches(hash, "correct horse battery"))
	assert.False(t, h.Matches(hash, "wrong"))
	assert.False(t, h.Matches("not-a-hash", "wrong"))
}
