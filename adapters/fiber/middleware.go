package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/shopauth/shopauth"
)

// RequireAuth validates the session token and stores user/session data in
// the context for downstream handlers.
func (a *Adapter) RequireAuth(c fiber.Ctx) error {
	token := extractToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": shopauth.ErrMissingAuthHeader.Error(),
		})
	}

	sessionData, err := a.handler.GetSession(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Store user and session in context for downstream handlers
	c.Locals("user", sessionData.User)
	c.Locals("session", sessionData.Session)
	c.Locals("sessionData", sessionData)

	return c.Next()
}
