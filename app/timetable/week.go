package timetable

import (
	"fmt"
	"time"

	"github.com/monymony68/jikanwari-app/app/models"
)

// Weekday header labels, indexed by time.Weekday (Sunday first).
var weekdayLabels = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// SameCalendarDay reports whether two instants fall on the same calendar
// date. Time of day is irrelevant.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekOf computes the 6-day week window containing anchor: the Monday on or
// before anchor, then Monday through Saturday. today drives the isToday flag
// and is passed in so the computation stays testable.
func WeekOf(anchor, today time.Time) []models.DayInfo {
	monday := anchor.AddDate(0, 0, -((int(anchor.Weekday()) + 6) % 7))

	days := make([]models.DayInfo, 6)
	for i := range days {
		date := monday.AddDate(0, 0, i)
		days[i] = models.DayInfo{
			Date:    fmt.Sprintf("%d/%d", int(date.Month()), date.Day()),
			Day:     weekdayLabels[date.Weekday()],
			IsToday: SameCalendarDay(date, today),
		}
	}
	return days
}

// SchoolYearRange computes the school-year window bounding month
// navigation: April through the following March. April–December base dates
// belong to the school year starting that April; January–March dates belong
// to the school year that started the previous April.
func SchoolYearRange(base time.Time) models.MonthRange {
	year := base.Year()
	if base.Month() >= time.April {
		return models.MonthRange{StartYear: year, StartMonth: time.April, EndYear: year + 1, EndMonth: time.March}
	}
	return models.MonthRange{StartYear: year - 1, StartMonth: time.April, EndYear: year, EndMonth: time.March}
}

// MonthInRange reports whether a year/month falls inside the range.
func MonthInRange(r models.MonthRange, year int, month time.Month) bool {
	if year < r.StartYear || year > r.EndYear {
		return false
	}
	if year == r.StartYear && month < r.StartMonth {
		return false
	}
	if year == r.EndYear && month > r.EndMonth {
		return false
	}
	return true
}

// NavigateMonth steps the displayed month by delta months, clamping to the
// valid range: a destination outside the range leaves the displayed month
// unchanged. Direct selection goes through the same check.
func NavigateMonth(year int, month time.Month, delta int, r models.MonthRange) (int, time.Month) {
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	if !MonthInRange(r, next.Year(), next.Month()) {
		return year, month
	}
	return next.Year(), next.Month()
}

// MonthsByYear expands the range into the per-year month lists shown by the
// year/month picker, in chronological order.
func MonthsByYear(r models.MonthRange) map[int][]time.Month {
	months := make(map[int][]time.Month)
	year, month := r.StartYear, r.StartMonth
	for year < r.EndYear || (year == r.EndYear && month <= r.EndMonth) {
		months[year] = append(months[year], month)
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return months
}

// CalendarDays builds the 42-cell month grid: six full weeks starting on the
// Sunday on or before the first of the month. Cells outside the displayed
// month are rendered dimmed and are not selectable; that is the caller's
// concern, the grid only flags them.
func CalendarDays(year int, month time.Month, selected, today time.Time) []models.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, selected.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]models.CalendarDay, 42)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = models.CalendarDay{
			Date:           date,
			Day:            date.Day(),
			InCurrentMonth: date.Month() == month,
			IsSelected:     SameCalendarDay(date, selected),
			IsToday:        SameCalendarDay(date, today),
		}
	}
	return days
}
