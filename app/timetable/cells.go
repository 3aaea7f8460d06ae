package timetable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/monymony68/jikanwari-app/app/models"
)

// CellKey builds the slot key for a day column and period row. dateLabel is
// the "M/D" string from DayInfo; the year is deliberately not part of the
// key, so the same calendar date of two different years shares one slot.
func CellKey(dateLabel string, period int) string {
	return fmt.Sprintf("%s-%d", dateLabel, period)
}

// ParseCellKey splits a slot key back into its date label and period. Kept
// for debugging and for calendar-event building; display code never needs it.
func ParseCellKey(key string) (dateLabel string, period int, err error) {
	i := strings.LastIndex(key, "-")
	if i < 0 {
		return "", 0, fmt.Errorf("malformed cell key %q", key)
	}
	period, err = strconv.Atoi(key[i+1:])
	if err != nil || period < 1 {
		return "", 0, fmt.Errorf("malformed cell key %q", key)
	}
	return key[:i], period, nil
}

// UpsertCell returns a copy of cells with the record stored under key,
// replacing any previous record. Record contents are not validated against
// the taxonomy; the edit form owns that.
func UpsertCell(cells models.CellData, key string, record models.ClassRecord) models.CellData {
	next := make(models.CellData, len(cells)+1)
	for k, v := range cells {
		next[k] = v
	}
	next[key] = record
	return next
}

// DeleteCell returns a copy of cells without the given key. Deleting an
// absent key is a no-op, not an error.
func DeleteCell(cells models.CellData, key string) models.CellData {
	next := make(models.CellData, len(cells))
	for k, v := range cells {
		if k != key {
			next[k] = v
		}
	}
	return next
}

// GetCell looks up the record stored at key.
func GetCell(cells models.CellData, key string) (models.ClassRecord, bool) {
	record, ok := cells[key]
	return record, ok
}

// ReconcileWithSubjects drops every record whose main subject no longer
// names a subject in the taxonomy. It checks only the Subject field: a
// record whose SubSubject was removed but whose Subject survives is kept
// with the dangling reference intact. Runs once per settings save, never on
// reads; applying it twice yields the same result as applying it once.
func ReconcileWithSubjects(cells models.CellData, subjects []models.Subject) models.CellData {
	names := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		names[s.Name] = struct{}{}
	}

	next := make(models.CellData, len(cells))
	for key, record := range cells {
		if _, ok := names[record.Subject]; ok {
			next[key] = record
		}
	}
	return next
}
