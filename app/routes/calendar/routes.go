package calendar

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/state"
)

func SetupCalendarRoutes(app *fiber.App, st *state.Container) {
	api := app.Group("/api/calendar")

	api.Get("/range", func(c *fiber.Ctx) error { return GetRangeAPI(c, st) })
	api.Get("/month", func(c *fiber.Ctx) error { return GetMonthAPI(c, st) })
	api.Post("/navigate", func(c *fiber.Ctx) error { return NavigateMonthAPI(c, st) })
}
