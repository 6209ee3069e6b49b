package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	monthStart, err := parseMonthQuery(c.Query("month"), handler.schedule.Today(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	days, err := handler.schedule.Calendar(userID, monthStart)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"month": monthStart.Format("2006-01"),
		"days":  days,
	})
}
