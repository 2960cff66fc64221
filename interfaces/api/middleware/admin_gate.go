package middleware

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/pkg/logger"
	"shopadmin/pkg/utils"
)

// AdminGate authorizes mutating routes. It resolves the caller's identity
// from the bearer session token (issued by the external login flow) and
// requires the email to be on the injected allow-list. Rejections are a bare
// 401 with an empty body and the handler never runs, so an unauthorized call
// can have no side effects.
func AdminGate(jwtSecret string, adminEmails []string) fiber.Handler {
	allowed := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		allowed[email] = true
	}

	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
		if token == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		user, err := utils.ParseSessionToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Session token rejected", "error", err)
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		if !allowed[user.Email] {
			logger.WarnContext(c.UserContext(), "Caller not on admin allow-list", "email", user.Email)
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// GetSessionUser returns the identity the admin gate attached to the request.
func GetSessionUser(c *fiber.Ctx) *utils.SessionUser {
	if user, ok := c.Locals("user").(*utils.SessionUser); ok {
		return user
	}
	return nil
}
