package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/state"
)

func SetupSettingsRoutes(app *fiber.App, st *state.Container) {
	api := app.Group("/api/settings")

	api.Get("/", func(c *fiber.Ctx) error { return GetSettingsAPI(c, st) })
	api.Put("/", func(c *fiber.Ctx) error { return SaveSettingsAPI(c, st) })
	api.Put("/school-info", func(c *fiber.Ctx) error { return UpdateSchoolInfoAPI(c, st) })
	api.Put("/period-times", func(c *fiber.Ctx) error { return UpdatePeriodTimesAPI(c, st) })
	api.Put("/location", func(c *fiber.Ctx) error { return UpdateLocationAPI(c, st) })

	api.Post("/subjects", func(c *fiber.Ctx) error { return AddSubjectAPI(c, st) })
	api.Post("/subjects/:parentId/sub", func(c *fiber.Ctx) error { return AddSubSubjectAPI(c, st) })
	api.Patch("/subjects/:id", func(c *fiber.Ctx) error { return UpdateSubjectAPI(c, st) })
	api.Delete("/subjects/:id", func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, st) })

	api.Post("/subjects/restore", func(c *fiber.Ctx) error { return RestoreSubjectsAPI(c, st) })
	api.Post("/subjects/reset", func(c *fiber.Ctx) error { return ResetSubjectsAPI(c, st) })
	api.Post("/subjects/reset-colors", func(c *fiber.Ctx) error { return ResetColorsAPI(c, st) })
	api.Post("/subjects/reorder", func(c *fiber.Ctx) error { return ReorderSubjectsAPI(c, st) })
}
