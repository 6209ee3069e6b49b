package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pantrycycle/internal/models"
	"gorm.io/gorm"
)

// AssignMeal sets the recipe of one meal slot, or reserves the slot when no
// recipe_id is given.
func (handler *Handler) AssignMeal(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	meal := parseMealParam(c.Params("meal"))
	if !models.IsValidMealType(meal) {
		return apiError(c, fiber.StatusBadRequest, "invalid meal type")
	}

	payload := mealPayload{}
	if len(c.Body()) > 0 {
		if ok, err := parseAndValidate(c, &payload); !ok {
			return err
		}
	}
	if payload.RecipeID != nil {
		if _, err := handler.recipes.FindByID(*payload.RecipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apiError(c, fiber.StatusNotFound, "recipe not found")
			}
			return serviceError(c, err)
		}
	}

	block, err := handler.schedule.AssignMeal(userID, day, meal, payload.RecipeID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"week": block})
}

func (handler *Handler) RemoveMeal(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	block, err := handler.schedule.RemoveMeal(userID, day, parseMealParam(c.Params("meal")))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"week": block})
}

func parseMealParam(raw string) models.MealType {
	return models.MealType(strings.ToLower(strings.TrimSpace(raw)))
}
