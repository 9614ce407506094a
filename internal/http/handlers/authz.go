package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
)

// RequireUser verifies the bearer token and attaches the resolved user
// to the request context for every guarded route.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			applog.Security(c, "access.denied.token", map[string]any{"reason": "missing_bearer"})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		u, err := auth.CurrentUser(token)
		if err != nil {
			applog.Security(c, "access.denied.token", map[string]any{"reason": "invalid_token"})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals("user", u)
		c.Locals("username", u.Username)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
