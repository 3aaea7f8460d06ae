package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/monymony68/jikanwari-app/app/config"
	calendarroutes "github.com/monymony68/jikanwari-app/app/routes/calendar"
	settingsroutes "github.com/monymony68/jikanwari-app/app/routes/settings"
	timetableroutes "github.com/monymony68/jikanwari-app/app/routes/timetable"
	"github.com/monymony68/jikanwari-app/app/state"
	"github.com/monymony68/jikanwari-app/app/storage"
	"github.com/monymony68/jikanwari-app/app/timetable"
)

// customErrorHandler renders JSON for API requests and the error templates
// for page requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{"Title": "ページが見つかりません"})
	case 500:
		return c.Status(500).Render("500", fiber.Map{"Title": "サーバーエラー"})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "エラー",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "postgres" {
		log.Println("Using PostgreSQL state storage")
		return storage.NewPGStore(cfg.DatabaseURL)
	}
	log.Printf("Using file state storage under %s", cfg.DataDir)
	return storage.NewFileStore(cfg.DataDir)
}

func main() {
	// The school-year window and week grid follow Japanese school time.
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		log.Printf("Warning: failed to load Asia/Tokyo, falling back to UTC+9: %v", err)
		time.Local = time.FixedZone("JST", 9*60*60)
	} else {
		time.Local = loc
	}

	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to open state storage: ", err)
	}
	defer store.Close()

	st := state.Load(store, time.Now())

	engine := html.New("./app/templates", ".html")
	engine.Reload(false)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		settings := st.Settings()
		return c.Render("index", fiber.Map{
			"Title":      settings.SchoolInfo.SchoolName + " 時間割",
			"SchoolInfo": settings.SchoolInfo,
			"Days":       timetable.WeekOf(st.WeekAnchor(), time.Now()),
		})
	})

	timetableroutes.SetupTimetableRoutes(app, st)
	settingsroutes.SetupSettingsRoutes(app, st)
	calendarroutes.SetupCalendarRoutes(app, st)

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
