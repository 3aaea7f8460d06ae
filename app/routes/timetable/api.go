package timetable

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/models"
	"github.com/monymony68/jikanwari-app/app/state"
	"github.com/monymony68/jikanwari-app/app/timetable"
)

// weekResponse assembles the view for the week containing anchor: the six
// day columns plus every stored record addressable from them.
func weekResponse(st *state.Container, anchor time.Time) fiber.Map {
	days := timetable.WeekOf(anchor, time.Now())
	settings := st.Settings()
	cells := st.Cells()

	visible := models.CellData{}
	for _, day := range days {
		for period := 1; period <= len(settings.PeriodTimes); period++ {
			key := timetable.CellKey(day.Date, period)
			if record, ok := cells[key]; ok {
				visible[key] = record
			}
		}
	}

	return fiber.Map{
		"anchor":      anchor.Format("2006-01-02"),
		"days":        days,
		"periodTimes": settings.PeriodTimes,
		"cells":       visible,
	}
}

func GetWeekAPI(c *fiber.Ctx, st *state.Container) error {
	return c.JSON(weekResponse(st, st.WeekAnchor()))
}

func ShiftWeekAPI(c *fiber.Ctx, st *state.Container, weeks int) error {
	anchor, err := st.ShiftWeek(weeks)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save week anchor"})
	}
	return c.JSON(weekResponse(st, anchor))
}

func SelectWeekAPI(c *fiber.Ctx, st *state.Container) error {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}
	if err := st.SelectDate(date); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save selected date"})
	}
	return c.JSON(weekResponse(st, date))
}

// slotKeyFromParams rebuilds the "M/D-period" key from path parameters. The
// date label keeps the unpadded form the grid uses.
func slotKeyFromParams(c *fiber.Ctx) (string, error) {
	month, err := c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month")
	}
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid day")
	}
	period, err := c.ParamsInt("period")
	if err != nil || period < 1 {
		return "", fmt.Errorf("invalid period")
	}
	return timetable.CellKey(fmt.Sprintf("%d/%d", month, day), period), nil
}

func GetSlotAPI(c *fiber.Ctx, st *state.Container) error {
	key, err := slotKeyFromParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	record, ok := st.GetSlot(key)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Slot is empty"})
	}
	return c.JSON(record)
}

func SaveSlotAPI(c *fiber.Ctx, st *state.Container) error {
	key, err := slotKeyFromParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	var record models.ClassRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := st.SaveSlot(key, record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save slot"})
	}
	return c.JSON(record)
}

func DeleteSlotAPI(c *fiber.Ctx, st *state.Container) error {
	key, err := slotKeyFromParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := st.DeleteSlot(key); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete slot"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// ResolveTeacherAPI tells the edit form which teacher to pre-fill when a
// subject or sub-subject is picked, and whether the field is read-only.
func ResolveTeacherAPI(c *fiber.Ctx, st *state.Container) error {
	settings := st.Settings()
	teacher, locked := timetable.ResolveTeacher(
		settings.Subjects, c.Query("subject"), c.Query("subSubject"))
	return c.JSON(fiber.Map{"teacher": teacher, "locked": locked})
}

// GetEventsAPI builds one calendar event per non-empty slot, assuming the
// current year. The actual calendar upload is a separate collaborator.
func GetEventsAPI(c *fiber.Ctx, st *state.Container) error {
	events := timetable.BuildCalendarEvents(st.Cells(), time.Now().Year(), time.Local)
	return c.JSON(fiber.Map{
		"events": events,
		"count":  len(events),
	})
}
