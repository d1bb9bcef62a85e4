package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/studylink/internal/auth"
	"github.com/fadilmartias/studylink/internal/middleware"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("find: %w", usecase.ErrNotFound), fiber.StatusNotFound},
		{usecase.ErrForbidden, fiber.StatusForbidden},
		{fmt.Errorf("dup: %w", usecase.ErrConflict), fiber.StatusConflict},
		{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{usecase.ErrInvalidInput, fiber.StatusBadRequest},
		{usecase.ErrEmbeddingUnavailable, fiber.StatusServiceUnavailable},
		{util.NewFormError("validation failed", nil), fiber.StatusUnprocessableEntity},
		{fiber.ErrUnauthorized, fiber.StatusUnauthorized},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func newTestApp(t *testing.T) (*fiber.App, *auth.JWTManager) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager("handler-secret", time.Hour)
	require.NoError(t, err)
	requireAuth := middleware.RequireAuth(jwtManager)

	app := fiber.New()
	NewAuthHandler(usecase.NewAuthUsecase(nil, nil, jwtManager, nil)).RegisterRoutes(app)
	groups := usecase.NewStudyGroupUsecase(nil, nil, nil, nil)
	NewStudyGroupHandler(groups, nil, requireAuth).RegisterRoutes(app)
	NewCommentHandler(usecase.NewCommentUsecase(nil, nil), requireAuth).RegisterRoutes(app)
	return app, jwtManager
}

func TestSignup_ValidationFailure(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"not-an-email","password":"short","nickname":"a","career":"GURU"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	env := decode(t, body)
	assert.False(t, env.Success)
	assert.Equal(t, "validation failed", env.Message)
	assert.Contains(t, env.Details, "email")
	assert.Contains(t, env.Details, "password")
	assert.Contains(t, env.Details, "nickname")
	assert.Contains(t, env.Details, "career")
}

func TestSemanticSearch_NoEmbedder(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/study-groups/search/semantic?q=golang", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range []struct{ method, path string }{
		{fiber.MethodPost, "/api/study-groups"},
		{fiber.MethodGet, "/api/study-groups/recommendations"},
		{fiber.MethodGet, "/api/study-groups/recommendations/v2"},
		{fiber.MethodPut, "/api/study-groups/" + uuid.NewString()},
		{fiber.MethodDelete, "/api/comments/" + uuid.NewString()},
	} {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, route.method+" "+route.path)
	}
}

func TestDetail_InvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/study-groups/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateComment_ValidationBeforeLookup(t *testing.T) {
	app, jwtManager := newTestApp(t)
	token, err := jwtManager.GenerateToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/study-groups/"+uuid.NewString()+"/comments",
		strings.NewReader(`{"content":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
