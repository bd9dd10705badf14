package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/auth"
)

// AdminTokenCookie carries the admin session token for browser clients;
// API clients send it as a bearer header instead.
const AdminTokenCookie = "admin_token"

// AdminRequired rejects requests that do not carry a valid admin session
// token, either in the admin_token cookie or an Authorization: Bearer
// header. Valid claims are stored in locals under "admin".
func AdminRequired(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AdminTokenCookie)
		if token == "" {
			authz := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authz, "Bearer ") {
				token = strings.TrimPrefix(authz, "Bearer ")
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Admin authentication required",
			})
		}

		claims, err := auth.ParseAdminToken(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid or expired admin session",
			})
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
