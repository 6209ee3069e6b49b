package api

import "github.com/gofiber/fiber/v2"

// AuthRequired accepts tokens issued by the account service, either as a
// bearer token or in the auth cookie, and stores the user id in Locals.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}
