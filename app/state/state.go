// Package state owns the persistent application state: the settings
// aggregate, the slot store, the recycle log and the two date cursors. All
// model logic lives in app/timetable as pure functions; the container
// sequences them over its in-memory snapshot and writes each blob through
// to storage immediately after the mutation that touched it. Keys persist
// independently, there is no cross-key transaction.
package state

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/monymony68/jikanwari-app/app/models"
	"github.com/monymony68/jikanwari-app/app/storage"
	"github.com/monymony68/jikanwari-app/app/timetable"
)

type Container struct {
	mu sync.Mutex

	store storage.Store

	settings     models.Settings
	cells        models.CellData
	deleted      []models.DeletedSubject
	weekAnchor   time.Time
	selectedDate time.Time
}

// Load builds a container from whatever the store holds. Every key falls
// back to its own default when missing or unparseable; a corrupt blob never
// aborts startup.
func Load(store storage.Store, now time.Time) *Container {
	c := &Container{
		store:        store,
		settings:     models.DefaultSettings(),
		cells:        models.CellData{},
		weekAnchor:   now,
		selectedDate: now,
	}
	loadKey(store, storage.KeySettings, &c.settings)
	loadKey(store, storage.KeyCellData, &c.cells)
	loadKey(store, storage.KeyDeletedSubjects, &c.deleted)
	loadKey(store, storage.KeyWeekAnchor, &c.weekAnchor)
	loadKey(store, storage.KeySelectedDate, &c.selectedDate)

	if c.cells == nil {
		c.cells = models.CellData{}
	}
	// An empty saved subject list falls back to the defaults, like an
	// unsaved one.
	if len(c.settings.Subjects) == 0 {
		c.settings.Subjects = models.DefaultSubjects()
	}
	if len(c.settings.PeriodTimes) == 0 {
		c.settings.PeriodTimes = models.DefaultPeriodTimes()
	}
	return c
}

func loadKey(store storage.Store, key string, dst any) {
	data, ok, err := store.Get(key)
	if err != nil {
		log.Printf("storage: reading %q failed, using default: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("storage: %q holds invalid data, using default: %v", key, err)
	}
}

func (c *Container) persist(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Put(key, data)
}

// Settings returns a snapshot of the current settings.
func (c *Container) Settings() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.settings
	s.Subjects = append([]models.Subject{}, c.settings.Subjects...)
	s.PeriodTimes = append([]models.PeriodTime{}, c.settings.PeriodTimes...)
	return s
}

// Cells returns a snapshot of the slot store.
func (c *Container) Cells() models.CellData {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(models.CellData, len(c.cells))
	for k, v := range c.cells {
		snapshot[k] = v
	}
	return snapshot
}

// DeletedSubjects returns a snapshot of the recycle log.
func (c *Container) DeletedSubjects() []models.DeletedSubject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.DeletedSubject{}, c.deleted...)
}

// WeekAnchor returns the date whose week the grid currently shows.
func (c *Container) WeekAnchor() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weekAnchor
}

// SelectedDate returns the date last picked in the calendar popup.
func (c *Container) SelectedDate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedDate
}

// GetSlot looks up one slot record.
func (c *Container) GetSlot(key string) (models.ClassRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return timetable.GetCell(c.cells, key)
}

// SaveSlot stores a record under the given slot key.
func (c *Container) SaveSlot(key string, record models.ClassRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cells = timetable.UpsertCell(c.cells, key, record)
	return c.persist(storage.KeyCellData, c.cells)
}

// DeleteSlot clears a slot. Clearing an empty slot is a no-op that still
// reports success.
func (c *Container) DeleteSlot(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cells = timetable.DeleteCell(c.cells, key)
	return c.persist(storage.KeyCellData, c.cells)
}

// SelectDate jumps the view to an arbitrary date: both the selected date
// and the week anchor move, regardless of the month picker's valid range.
func (c *Container) SelectDate(date time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedDate = date
	c.weekAnchor = date
	if err := c.persist(storage.KeySelectedDate, c.selectedDate); err != nil {
		return err
	}
	return c.persist(storage.KeyWeekAnchor, c.weekAnchor)
}

// ShiftWeek moves the week anchor by whole weeks (negative for past).
func (c *Container) ShiftWeek(weeks int) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weekAnchor = c.weekAnchor.AddDate(0, 0, 7*weeks)
	return c.weekAnchor, c.persist(storage.KeyWeekAnchor, c.weekAnchor)
}

// SaveSettings replaces the settings wholesale and then reconciles the slot
// store against the new subject list, exactly once. Records whose main
// subject no longer exists are dropped; this is the only place record
// removal happens implicitly.
func (c *Container) SaveSettings(settings models.Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = settings
	if err := c.persist(storage.KeySettings, c.settings); err != nil {
		return err
	}
	return c.reconcileLocked()
}

func (c *Container) reconcileLocked() error {
	c.cells = timetable.ReconcileWithSubjects(c.cells, c.settings.Subjects)
	return c.persist(storage.KeyCellData, c.cells)
}

// UpdateSchoolInfo saves new school metadata. Subjects are untouched, so no
// reconciliation runs.
func (c *Container) UpdateSchoolInfo(info models.SchoolInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.SchoolInfo = info
	return c.persist(storage.KeySettings, c.settings)
}

// UpdatePeriodTimes saves a new period schedule.
func (c *Container) UpdatePeriodTimes(times []models.PeriodTime) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.PeriodTimes = times
	return c.persist(storage.KeySettings, c.settings)
}

// UpdateLocation saves the weather region.
func (c *Container) UpdateLocation(loc models.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Location = loc
	return c.persist(storage.KeySettings, c.settings)
}

// AddMainSubject appends a fresh main subject and returns it.
func (c *Container) AddMainSubject() (models.Subject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var created models.Subject
	c.settings.Subjects, created = timetable.AddMainSubject(c.settings.Subjects)
	return created, c.persist(storage.KeySettings, c.settings)
}

// AddSubSubject appends a fresh sub-subject under the given parent.
func (c *Container) AddSubSubject(parentID string) (models.Subject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var created models.Subject
	c.settings.Subjects, created = timetable.AddSubSubject(c.settings.Subjects, parentID)
	return created, c.persist(storage.KeySettings, c.settings)
}

// UpdateSubject merges a patch into one subject. Renames can orphan slot
// records referencing the old name; they are cleaned up by the next
// reconciliation.
func (c *Container) UpdateSubject(id string, patch timetable.SubjectPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Subjects = timetable.UpdateSubject(c.settings.Subjects, id, patch)
	return c.persist(storage.KeySettings, c.settings)
}

// DeleteSubject removes a subject (cascading to its sub-subjects), logs the
// removal for later restore and reconciles the slot store against the
// shrunken taxonomy.
func (c *Container) DeleteSubject(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var removed []models.DeletedSubject
	c.settings.Subjects, removed = timetable.DeleteSubject(c.settings.Subjects, id, time.Now().UnixMilli())
	if len(removed) == 0 {
		return nil
	}
	c.deleted = timetable.MergeDeletedLog(c.deleted, removed)
	if err := c.persist(storage.KeyDeletedSubjects, c.deleted); err != nil {
		return err
	}
	if err := c.persist(storage.KeySettings, c.settings); err != nil {
		return err
	}
	return c.reconcileLocked()
}

// RestoreSubjects reinstates every subject in the recycle log and clears
// it. Returns timetable.ErrNothingToRestore when the log is empty.
func (c *Container) RestoreSubjects() ([]models.Subject, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	restored, err := timetable.RestoreSubjects(c.settings.Subjects, c.deleted)
	if err != nil {
		return nil, err
	}
	c.settings.Subjects = restored
	c.deleted = nil
	if err := c.store.Delete(storage.KeyDeletedSubjects); err != nil {
		return nil, err
	}
	return restored, c.persist(storage.KeySettings, c.settings)
}

// ResetSubjects replaces the taxonomy with the built-in defaults, clears
// the recycle log and reconciles the slot store. Destructive; the caller
// confirms with the user before invoking.
func (c *Container) ResetSubjects() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Subjects = models.DefaultSubjects()
	c.deleted = nil
	if err := c.store.Delete(storage.KeyDeletedSubjects); err != nil {
		return err
	}
	if err := c.persist(storage.KeySettings, c.settings); err != nil {
		return err
	}
	return c.reconcileLocked()
}

// ResetColors restores default colors for subjects whose names match a
// default subject.
func (c *Container) ResetColors() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Subjects = timetable.ResetColors(c.settings.Subjects, models.DefaultSubjects())
	return c.persist(storage.KeySettings, c.settings)
}

// ReorderSubjects applies a drag-reorder within one sibling group.
// Cross-group drags leave the taxonomy unchanged.
func (c *Container) ReorderSubjects(draggedID, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Subjects = timetable.ReorderSubjects(c.settings.Subjects, draggedID, targetID)
	return c.persist(storage.KeySettings, c.settings)
}
