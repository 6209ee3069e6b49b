package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	history, err := handler.periods.History(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"periods": history})
}

func (handler *Handler) AddPeriod(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	payload := periodPayload{}
	if ok, err := parseAndValidate(c, &payload); !ok {
		return err
	}
	start, end, err := handler.parsePeriodRange(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.periods.AddPeriod(userID, start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"period": record})
}

// UpdateLatestPeriod edits the most recent period; older ones are read-only.
func (handler *Handler) UpdateLatestPeriod(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	payload := periodPayload{}
	if ok, err := parseAndValidate(c, &payload); !ok {
		return err
	}
	start, end, err := handler.parsePeriodRange(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.periods.UpdateLatestPeriod(userID, start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"period": record})
}
