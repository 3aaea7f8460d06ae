package timetable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/monymony68/jikanwari-app/app/models"
)

// Events start at 8 o'clock plus the period number and run one hour. This
// mirrors the calendar-export stub: the actual calendar API call stays out
// of scope, only the event construction lives here.
const exportBaseHour = 8

// BuildCalendarEvents turns every non-empty slot into one calendar event in
// the given year and location. Slot keys carry no year, so the caller
// supplies the one to assume. Unparseable keys are skipped. Events come back
// sorted by start time.
func BuildCalendarEvents(cells models.CellData, year int, loc *time.Location) []models.CalendarEvent {
	var events []models.CalendarEvent
	for key, record := range cells {
		dateLabel, period, err := ParseCellKey(key)
		if err != nil {
			continue
		}
		parts := strings.SplitN(dateLabel, "/", 2)
		if len(parts) != 2 {
			continue
		}
		month, merr := strconv.Atoi(parts[0])
		day, derr := strconv.Atoi(parts[1])
		if merr != nil || derr != nil {
			continue
		}

		start := time.Date(year, time.Month(month), day, exportBaseHour+period, 0, 0, 0, loc)
		events = append(events, models.CalendarEvent{
			Summary: record.Subject,
			Description: fmt.Sprintf("内容: %s\n場所: %s\n必要物: %s\n宿題: %s",
				record.Content, record.Location, record.Materials, record.Homework),
			Start: start,
			End:   start.Add(time.Hour),
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events
}
