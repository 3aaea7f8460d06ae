package timetable

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/monymony68/jikanwari-app/app/models"
)

// ErrNothingToRestore is returned by RestoreSubjects when the recycle log is
// empty. It surfaces to the user as a notice, not an error page.
var ErrNothingToRestore = errors.New("no deleted subjects to restore")

var defaultColor = models.SubjectColor{Bg: "#CCCCCC", Text: "#FFF"}

// MainSubjects returns the top-level subjects sorted by display order.
// Ties keep the original list order.
func MainSubjects(subjects []models.Subject) []models.Subject {
	var mains []models.Subject
	for _, s := range subjects {
		if s.IsMain() {
			mains = append(mains, s)
		}
	}
	sort.SliceStable(mains, func(i, j int) bool { return mains[i].Order < mains[j].Order })
	return mains
}

// SubSubjects returns the sub-subjects of one parent sorted by display order.
func SubSubjects(subjects []models.Subject, parentID string) []models.Subject {
	var subs []models.Subject
	for _, s := range subjects {
		if s.ParentID == parentID && parentID != "" {
			subs = append(subs, s)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })
	return subs
}

// FindSubjectByID returns the subject with the given id, or nil.
func FindSubjectByID(subjects []models.Subject, id string) *models.Subject {
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i]
		}
	}
	return nil
}

// FindSubjectByName returns the first subject with the given name, or nil.
// Names are not unique in the model; first match wins and callers live with
// the ambiguity.
func FindSubjectByName(subjects []models.Subject, name string) *models.Subject {
	if name == "" {
		return nil
	}
	for i := range subjects {
		if subjects[i].Name == name {
			return &subjects[i]
		}
	}
	return nil
}

// AddMainSubject appends a fresh, unnamed main subject ordered after every
// existing main subject.
func AddMainSubject(subjects []models.Subject) ([]models.Subject, models.Subject) {
	maxOrder := -1
	for _, s := range subjects {
		if s.IsMain() && s.Order > maxOrder {
			maxOrder = s.Order
		}
	}
	created := models.Subject{
		ID:    uuid.NewString(),
		Color: defaultColor,
		Order: maxOrder + 1,
	}
	return append(append([]models.Subject{}, subjects...), created), created
}

// AddSubSubject appends a fresh, unnamed sub-subject under parentID. The new
// subject inherits the parent's colors, falling back to the default pair
// when the parent is missing.
func AddSubSubject(subjects []models.Subject, parentID string) ([]models.Subject, models.Subject) {
	color := defaultColor
	if parent := FindSubjectByID(subjects, parentID); parent != nil {
		color = parent.Color
	}

	order := 0
	for _, s := range subjects {
		if s.ParentID == parentID && s.Order >= order {
			order = s.Order + 1
		}
	}

	created := models.Subject{
		ID:       uuid.NewString(),
		Color:    color,
		ParentID: parentID,
		Order:    order,
	}
	return append(append([]models.Subject{}, subjects...), created), created
}

// SubjectPatch carries the fields UpdateSubject may change. Nil fields are
// left untouched.
type SubjectPatch struct {
	Name             *string              `json:"name"`
	Color            *models.SubjectColor `json:"color"`
	Teacher          *string              `json:"teacher"`
	Order            *int                 `json:"order"`
	UseParentTeacher *bool                `json:"useParentTeacher"`
}

// UpdateSubject merges patch into the subject with the given id. Unknown ids
// are a no-op.
func UpdateSubject(subjects []models.Subject, id string, patch SubjectPatch) []models.Subject {
	next := append([]models.Subject{}, subjects...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Name != nil {
			next[i].Name = *patch.Name
		}
		if patch.Color != nil {
			next[i].Color = *patch.Color
		}
		if patch.Teacher != nil {
			next[i].Teacher = *patch.Teacher
		}
		if patch.Order != nil {
			next[i].Order = *patch.Order
		}
		if patch.UseParentTeacher != nil {
			next[i].UseParentTeacher = *patch.UseParentTeacher
		}
		break
	}
	return next
}

// DeleteSubject removes the subject with the given id and, when it is a main
// subject, all of its sub-subjects. Every removed subject becomes a recycle
// log entry stamped with the same deletedAt (unix milliseconds). Unknown ids
// remove nothing.
func DeleteSubject(subjects []models.Subject, id string, deletedAt int64) ([]models.Subject, []models.DeletedSubject) {
	target := FindSubjectByID(subjects, id)
	if target == nil {
		return subjects, nil
	}

	var remaining []models.Subject
	var removed []models.DeletedSubject
	for _, s := range subjects {
		if s.ID == id || (target.IsMain() && s.ParentID == id) {
			removed = append(removed, models.DeletedSubject{Subject: s, DeletedAt: deletedAt})
			continue
		}
		remaining = append(remaining, s)
	}
	return remaining, removed
}

// MergeDeletedLog folds freshly deleted subjects into the recycle log.
// The log keeps at most one entry per subject name: an older entry whose
// name collides with any new one is superseded.
func MergeDeletedLog(log []models.DeletedSubject, removed []models.DeletedSubject) []models.DeletedSubject {
	if len(removed) == 0 {
		return log
	}
	names := make(map[string]struct{}, len(removed))
	for _, d := range removed {
		names[d.Name] = struct{}{}
	}

	var merged []models.DeletedSubject
	for _, d := range log {
		if _, collides := names[d.Name]; !collides {
			merged = append(merged, d)
		}
	}
	return append(merged, removed...)
}

// RestoreSubjects reinstates every logged subject with a fresh id. Parent
// links are remapped through a substitution table built from the restored
// main subjects, so a restored sub-subject points at the new id of its
// restored parent; a sub whose parent is not in the log comes back as a
// main subject, as the original app did. Restored subjects sort after the
// current taxonomy. Returns ErrNothingToRestore on an empty log.
func RestoreSubjects(subjects []models.Subject, log []models.DeletedSubject) ([]models.Subject, error) {
	if len(log) == 0 {
		return subjects, ErrNothingToRestore
	}

	idMap := make(map[string]string)
	tailOrder := len(subjects)

	var restoredMains, restoredSubs []models.Subject
	for _, d := range log {
		if d.IsMain() {
			s := d.Subject
			s.ID = uuid.NewString()
			s.Order = tailOrder + 1
			idMap[d.ID] = s.ID
			restoredMains = append(restoredMains, s)
		}
	}
	for _, d := range log {
		if !d.IsMain() {
			s := d.Subject
			s.ID = uuid.NewString()
			s.ParentID = idMap[d.ParentID]
			s.Order = tailOrder + 2
			restoredSubs = append(restoredSubs, s)
		}
	}

	next := append([]models.Subject{}, subjects...)
	next = append(next, restoredMains...)
	next = append(next, restoredSubs...)
	return next, nil
}

// ReorderSubjects moves the dragged subject to the target subject's position
// within their shared sibling group and renumbers that group densely from 0.
// Drags across groups (main onto sub, or between different parents) are
// silent no-ops.
func ReorderSubjects(subjects []models.Subject, draggedID, targetID string) []models.Subject {
	if draggedID == targetID {
		return subjects
	}
	dragged := FindSubjectByID(subjects, draggedID)
	target := FindSubjectByID(subjects, targetID)
	if dragged == nil || target == nil || dragged.ParentID != target.ParentID {
		return subjects
	}

	var group, rest []models.Subject
	if dragged.IsMain() {
		group = MainSubjects(subjects)
		for _, s := range subjects {
			if !s.IsMain() {
				rest = append(rest, s)
			}
		}
	} else {
		group = SubSubjects(subjects, dragged.ParentID)
		for _, s := range subjects {
			if s.ParentID != dragged.ParentID {
				rest = append(rest, s)
			}
		}
	}

	from, to := -1, -1
	for i, s := range group {
		if s.ID == draggedID {
			from = i
		}
		if s.ID == targetID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		return subjects
	}

	moved := group[from]
	group = append(group[:from], group[from+1:]...)
	group = append(group[:to], append([]models.Subject{moved}, group[to:]...)...)
	for i := range group {
		group[i].Order = i
	}

	return append(group, rest...)
}

// ResetColors restores the default color of every subject whose name matches
// a default subject. Names without a default keep their current colors.
func ResetColors(subjects []models.Subject, defaults []models.Subject) []models.Subject {
	next := append([]models.Subject{}, subjects...)
	for i := range next {
		if d := FindSubjectByName(defaults, next[i].Name); d != nil {
			next[i].Color = d.Color
		}
	}
	return next
}

// EffectiveTeacher resolves the teacher shown for a subject. A sub-subject
// flagged useParentTeacher always reads the parent's teacher, overriding any
// locally stored value.
func EffectiveTeacher(subject models.Subject, parent *models.Subject) string {
	if !subject.IsMain() && subject.UseParentTeacher {
		if parent == nil {
			return ""
		}
		return parent.Teacher
	}
	return subject.Teacher
}

// ResolveTeacher resolves the teacher for an edit-form selection by subject
// and optional sub-subject name. locked reports whether the taxonomy defines
// any teacher for the selection; the form shows the field read-only in that
// case and as free text otherwise. Dangling names resolve to an empty,
// unlocked teacher.
func ResolveTeacher(subjects []models.Subject, subjectName, subSubjectName string) (teacher string, locked bool) {
	main := FindSubjectByName(subjects, subjectName)
	if main == nil {
		return "", false
	}
	if subSubjectName != "" {
		for _, sub := range SubSubjects(subjects, main.ID) {
			if sub.Name == subSubjectName {
				teacher = EffectiveTeacher(sub, main)
				return teacher, teacher != ""
			}
		}
		// dangling sub-subject reference: fall through to the main subject
	}
	return main.Teacher, main.Teacher != ""
}

// ColorFor returns the display color for a record's main subject name.
// Unknown names report ok=false and render as plain text with default
// styling.
func ColorFor(subjects []models.Subject, name string) (models.SubjectColor, bool) {
	if s := FindSubjectByName(subjects, name); s != nil {
		return s.Color, true
	}
	return models.SubjectColor{}, false
}
