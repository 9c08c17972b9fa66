package middleware

import (
	"log"
	"strings"

	"renewrubber/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware gating the dashboard routes behind a
// valid session token. Unauthenticated visitors get a 401 pointing at the
// login route, matching the dashboard redirect of the original app.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Please sign in to view your dashboard",
				"redirect": "/login",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Authorization header format must be 'Bearer <token>'",
				"redirect": "/login",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Session token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Invalid or expired session",
				"redirect": "/login",
			})
		}

		// Stash claims for subsequent handlers.
		c.Locals("user_id", claims["user_id"])
		c.Locals("email", claims["email"])

		return c.Next()
	}
}
