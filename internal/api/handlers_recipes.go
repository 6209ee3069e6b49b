package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) RecommendRecipes(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	day := handler.schedule.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDayParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	recommendation, err := handler.schedule.Recommend(userID, day, parseMealParam(c.Query("meal")), limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(recommendation)
}
