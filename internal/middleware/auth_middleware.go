package middleware

import (
	"strings"

	"github.com/fadilmartias/studylink/internal/auth"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's id for UserID.
func RequireAuth(jwtManager *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		userID, _, err := jwtManager.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid or expired token",
			}, err)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by RequireAuth.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}
