package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxPlanningHorizonWeeks = 52

func (handler *Handler) ListAvailableWeeks(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	horizon := 0
	if raw := c.Query("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxPlanningHorizonWeeks {
			return apiError(c, fiber.StatusBadRequest, fmt.Sprintf("horizon must be between 1 and %d", maxPlanningHorizonWeeks))
		}
		horizon = parsed
	}

	weeks, err := handler.schedule.AvailableWeeks(userID, horizon)
	if err != nil {
		return serviceError(c, err)
	}
	sundays := make([]string, 0, len(weeks))
	for _, week := range weeks {
		sundays = append(sundays, week.Format("2006-01-02"))
	}
	return c.JSON(fiber.Map{"weeks": sundays})
}

// CreateWeek adds a block for the week containing the given date. Overlapping
// an existing block is allowed and reported as a warning.
func (handler *Handler) CreateWeek(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	payload := createWeekPayload{}
	if ok, err := parseAndValidate(c, &payload); !ok {
		return err
	}
	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	block, overlapping, err := handler.schedule.CreateWeek(userID, day)
	if err != nil {
		return serviceError(c, err)
	}

	warnings := make([]string, 0, len(overlapping))
	for _, id := range overlapping {
		warnings = append(warnings, fmt.Sprintf("overlaps week block %s", id))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"week":     block,
		"warnings": warnings,
	})
}

func (handler *Handler) DeleteWeek(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	if err := handler.schedule.DeleteWeek(userID, c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
