package api

import "github.com/gofiber/fiber/v2"

// GetProfile also completes a pending legacy template migration.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	profile, migrated, err := handler.schedule.EnsureLegacyMigrated(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"profile":         profile,
		"legacy_migrated": migrated,
	})
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	payload := preferencesPayload{}
	if ok, err := parseAndValidate(c, &payload); !ok {
		return err
	}

	profile, err := handler.schedule.UpdatePreferences(userID, payload.DietaryPreferences, payload.Allergens)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}
