package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pantrycycle/internal/db"
	"github.com/terraincognita07/pantrycycle/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, fields []fieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

// serviceError maps domain errors to responses. Anything unrecognized is
// logged and reported as a 500 without leaking details.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidMealType):
		return apiError(c, fiber.StatusBadRequest, "invalid meal type")
	case errors.Is(err, services.ErrInvalidPeriodRange):
		return apiError(c, fiber.StatusBadRequest, "period end is before period start")
	case errors.Is(err, services.ErrInvalidRecipeLimit):
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	case errors.Is(err, services.ErrWeekBlockNotFound):
		return apiError(c, fiber.StatusNotFound, "week block not found")
	case errors.Is(err, services.ErrNoPeriods):
		return apiError(c, fiber.StatusNotFound, "no recorded periods")
	case errors.Is(err, db.ErrStaleProfile):
		return apiError(c, fiber.StatusConflict, "profile was modified by another request, reload and retry")
	default:
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(contextUserIDKey).(uint)
	return userID, ok && userID != 0
}
