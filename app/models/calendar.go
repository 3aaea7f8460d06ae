package models

import "time"

// DayInfo is one column of the weekly grid.
type DayInfo struct {
	Date    string `json:"date"`    // "M/D", no year
	Day     string `json:"day"`     // one-character weekday label
	IsToday bool   `json:"isToday"`
}

// MonthRange is the school-year window the month picker may navigate in.
// Months are 1-based (time.Month).
type MonthRange struct {
	StartYear  int        `json:"startYear"`
	StartMonth time.Month `json:"startMonth"`
	EndYear    int        `json:"endYear"`
	EndMonth   time.Month `json:"endMonth"`
}

// CalendarDay is one cell of the 42-cell month grid.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	Day            int       `json:"day"`
	InCurrentMonth bool      `json:"inCurrentMonth"`
	IsSelected     bool      `json:"isSelected"`
	IsToday        bool      `json:"isToday"`
}

// CalendarEvent is one exportable event built from a non-empty slot.
type CalendarEvent struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}
