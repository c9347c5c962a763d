package middleware

import (
	"strings"

	domainerrors "katalog/internal/errors"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber.Ctx local holding the authenticated user's ID.
const UserIDKey = "user_id"

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's user ID for the handlers behind it.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.Unauthorized("authentication credentials were not provided")
		}

		// Expected format: "Bearer <token>"
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return domainerrors.Unauthorized("authorization header format must be 'Bearer <token>'")
		}

		userID, err := authService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID returns the ID stored by AuthRequired.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
