package calendar

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/state"
	"github.com/monymony68/jikanwari-app/app/timetable"
)

// GetRangeAPI returns the school-year window the month picker may show,
// derived from the currently selected date, plus the per-year month lists
// for the picker header.
func GetRangeAPI(c *fiber.Ctx, st *state.Container) error {
	r := timetable.SchoolYearRange(st.SelectedDate())
	return c.JSON(fiber.Map{
		"range":        r,
		"monthsByYear": timetable.MonthsByYear(r),
	})
}

// GetMonthAPI returns the 42-cell grid for one month. Without parameters it
// shows the selected date's month. A month outside the school-year window
// is not an error: the response carries allowed=false and no grid, and the
// popup keeps showing its current month.
func GetMonthAPI(c *fiber.Ctx, st *state.Container) error {
	selected := st.SelectedDate()
	r := timetable.SchoolYearRange(selected)

	year := c.QueryInt("year", selected.Year())
	month := time.Month(c.QueryInt("month", int(selected.Month())))
	if month < time.January || month > time.December {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	if !timetable.MonthInRange(r, year, month) {
		return c.JSON(fiber.Map{"allowed": false, "range": r})
	}

	return c.JSON(fiber.Map{
		"allowed": true,
		"range":   r,
		"year":    year,
		"month":   month,
		"days":    timetable.CalendarDays(year, month, selected, time.Now()),
	})
}

// NavigateMonthAPI steps the displayed month by delta months. A destination
// outside the window leaves year/month unchanged; moved reports whether the
// step was taken.
func NavigateMonthAPI(c *fiber.Ctx, st *state.Container) error {
	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Month < 1 || req.Month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	r := timetable.SchoolYearRange(st.SelectedDate())
	year, month := timetable.NavigateMonth(req.Year, time.Month(req.Month), req.Delta, r)
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"moved": year != req.Year || month != time.Month(req.Month),
	})
}
