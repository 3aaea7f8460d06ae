package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/monymony68/jikanwari-app/app/models"
	"github.com/monymony68/jikanwari-app/app/state"
	"github.com/monymony68/jikanwari-app/app/timetable"
)

func GetSettingsAPI(c *fiber.Ctx, st *state.Container) error {
	return c.JSON(fiber.Map{
		"settings":     st.Settings(),
		"deletedCount": len(st.DeletedSubjects()),
	})
}

// SaveSettingsAPI replaces the settings wholesale, the way the settings
// editor commits. Saving also reconciles the slot store against the new
// subject list, so records for removed subjects disappear here.
func SaveSettingsAPI(c *fiber.Ctx, st *state.Container) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := st.SaveSettings(settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
	}
	return c.JSON(st.Settings())
}

func UpdateSchoolInfoAPI(c *fiber.Ctx, st *state.Container) error {
	var info models.SchoolInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := st.UpdateSchoolInfo(info); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save school info"})
	}
	return c.JSON(info)
}

func UpdatePeriodTimesAPI(c *fiber.Ctx, st *state.Container) error {
	var req struct {
		PeriodTimes []models.PeriodTime `json:"periodTimes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for _, period := range req.PeriodTimes {
		if !ValidateTimeFormat(period.Start) || !ValidateTimeFormat(period.End) {
			return c.Status(400).JSON(fiber.Map{"error": "Period times must be HH:MM"})
		}
	}
	if err := st.UpdatePeriodTimes(req.PeriodTimes); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save period times"})
	}
	return c.JSON(req.PeriodTimes)
}

func UpdateLocationAPI(c *fiber.Ctx, st *state.Container) error {
	var loc models.Location
	if err := c.BodyParser(&loc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := st.UpdateLocation(loc); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save location"})
	}
	return c.JSON(loc)
}

func AddSubjectAPI(c *fiber.Ctx, st *state.Container) error {
	created, err := st.AddMainSubject()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add subject"})
	}
	return c.Status(201).JSON(created)
}

func AddSubSubjectAPI(c *fiber.Ctx, st *state.Container) error {
	parentID := c.Params("parentId")
	parent := timetable.FindSubjectByID(st.Settings().Subjects, parentID)
	if parent == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Parent subject not found"})
	}
	if !parent.IsMain() {
		return c.Status(400).JSON(fiber.Map{"error": "Sub-subjects cannot have sub-subjects"})
	}
	created, err := st.AddSubSubject(parentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add sub-subject"})
	}
	return c.Status(201).JSON(created)
}

// UpdateSubjectAPI merges a partial update into one subject. An unknown id
// is a no-op, mirroring the model operation, and still reports success.
func UpdateSubjectAPI(c *fiber.Ctx, st *state.Container) error {
	var patch timetable.SubjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := st.UpdateSubject(c.Params("id"), patch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(fiber.Map{"subjects": st.Settings().Subjects})
}

// DeleteSubjectAPI removes a subject after the user confirmed in the UI.
// Deleting a main subject cascades to its sub-subjects; all removed
// subjects land in the recycle log.
func DeleteSubjectAPI(c *fiber.Ctx, st *state.Container) error {
	if err := st.DeleteSubject(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{
		"subjects":     st.Settings().Subjects,
		"deletedCount": len(st.DeletedSubjects()),
	})
}

func RestoreSubjectsAPI(c *fiber.Ctx, st *state.Container) error {
	subjects, err := st.RestoreSubjects()
	if errors.Is(err, timetable.ErrNothingToRestore) {
		return c.JSON(fiber.Map{"restored": false, "message": "復活できる教科がありません"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore subjects"})
	}
	return c.JSON(fiber.Map{"restored": true, "subjects": subjects})
}

// ResetSubjectsAPI replaces the taxonomy with the defaults. Destructive;
// invoked only after user confirmation.
func ResetSubjectsAPI(c *fiber.Ctx, st *state.Container) error {
	if err := st.ResetSubjects(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset subjects"})
	}
	return c.JSON(fiber.Map{"subjects": st.Settings().Subjects})
}

func ResetColorsAPI(c *fiber.Ctx, st *state.Container) error {
	if err := st.ResetColors(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset colors"})
	}
	return c.JSON(fiber.Map{"subjects": st.Settings().Subjects})
}

// ReorderSubjectsAPI applies a drag reorder. A drag across sibling groups
// changes nothing and still reports the current list.
func ReorderSubjectsAPI(c *fiber.Ctx, st *state.Container) error {
	var req struct {
		DraggedID string `json:"draggedId"`
		TargetID  string `json:"targetId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DraggedID == "" || req.TargetID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "draggedId and targetId are required"})
	}
	if err := st.ReorderSubjects(req.DraggedID, req.TargetID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reorder subjects"})
	}
	return c.JSON(fiber.Map{"subjects": st.Settings().Subjects})
}
