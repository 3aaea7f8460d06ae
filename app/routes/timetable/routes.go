package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/state"
)

func SetupTimetableRoutes(app *fiber.App, st *state.Container) {
	api := app.Group("/api/timetable")

	api.Get("/week", func(c *fiber.Ctx) error { return GetWeekAPI(c, st) })
	api.Post("/week/prev", func(c *fiber.Ctx) error { return ShiftWeekAPI(c, st, -1) })
	api.Post("/week/next", func(c *fiber.Ctx) error { return ShiftWeekAPI(c, st, 1) })
	api.Post("/week/select", func(c *fiber.Ctx) error { return SelectWeekAPI(c, st) })

	api.Get("/slots/:month/:day/:period", func(c *fiber.Ctx) error { return GetSlotAPI(c, st) })
	api.Put("/slots/:month/:day/:period", func(c *fiber.Ctx) error { return SaveSlotAPI(c, st) })
	api.Delete("/slots/:month/:day/:period", func(c *fiber.Ctx) error { return DeleteSlotAPI(c, st) })

	api.Get("/teacher", func(c *fiber.Ctx) error { return ResolveTeacherAPI(c, st) })
	api.Get("/events", func(c *fiber.Ctx) error { return GetEventsAPI(c, st) })
}
