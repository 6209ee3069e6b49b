package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	profile := api.Group("/profile")
	profile.Get("", handler.GetProfile)
	profile.Put("/preferences", handler.UpdatePreferences)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.AddPeriod)
	periods.Put("/latest", handler.UpdateLatestPeriod)

	cycle := api.Group("/cycle")
	cycle.Get("/overview", handler.GetCycleOverview)
	cycle.Get("/phase/:date", handler.GetPhaseForDate)

	api.Get("/calendar", handler.GetCalendar)

	weeks := api.Group("/weeks")
	weeks.Get("/available", handler.ListAvailableWeeks)
	weeks.Post("", handler.CreateWeek)
	weeks.Delete("/:id", handler.DeleteWeek)

	meals := api.Group("/meals")
	meals.Put("/:date/:meal", handler.AssignMeal)
	meals.Delete("/:date/:meal", handler.RemoveMeal)

	recipes := api.Group("/recipes")
	recipes.Get("/recommend", handler.RecommendRecipes)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
