package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/akshit1742/portfolio-api/internal/utils"
)

// AuthCookieName is the fallback token transport; the Authorization header
// takes precedence when both are present.
const AuthCookieName = "auth-token"

// RequireAuth fails closed: no token, bad signature, and expiry all answer
// 401 before the handler runs. It performs no role scoping — a valid decoded
// identity is the whole contract in this single-admin system.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token provided",
			})
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies(AuthCookieName)
}
