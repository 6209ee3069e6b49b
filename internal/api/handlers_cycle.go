package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pantrycycle/internal/services"
)

func (handler *Handler) GetCycleOverview(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	overview, err := handler.schedule.Overview(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(overview)
}

// GetPhaseForDate returns both the calendar phase and the phase recipes are
// matched against.
func (handler *Handler) GetPhaseForDate(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	phase, err := handler.schedule.PhaseForDate(userID, day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"date":           day.Format("2006-01-02"),
		"phase":          phase,
		"label":          phase.Label(),
		"matching_phase": services.MatchingPhase(phase).Label(),
	})
}
