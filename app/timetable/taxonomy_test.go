package timetable

import (
	"errors"
	"testing"

	"github.com/monymony68/jikanwari-app/app/models"
)

func sampleTaxonomy() []models.Subject {
	return []models.Subject{
		{ID: "s1", Name: "数学", Teacher: "山田", Order: 0},
		{ID: "s2", Name: "数学演習", ParentID: "s1", UseParentTeacher: true, Order: 0},
		{ID: "s3", Name: "数学探究", ParentID: "s1", Teacher: "鈴木", Order: 1},
		{ID: "s4", Name: "英語", Order: 1},
		{ID: "s5", Name: "国語", Order: 2},
	}
}

func names(subjects []models.Subject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Name
	}
	return out
}

func TestMainSubjectsSorted(t *testing.T) {
	subjects := []models.Subject{
		{ID: "b", Name: "B", Order: 1},
		{ID: "c", Name: "C", Order: 0},
		{ID: "sub", Name: "sub", ParentID: "b"},
		{ID: "a", Name: "A", Order: 1}, // ties keep list order: after B
	}
	got := names(MainSubjects(subjects))
	want := []string{"C", "B", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MainSubjects order = %v, want %v", got, want)
		}
	}
}

func TestSubSubjectsSorted(t *testing.T) {
	subs := SubSubjects(sampleTaxonomy(), "s1")
	if len(subs) != 2 || subs[0].ID != "s2" || subs[1].ID != "s3" {
		t.Fatalf("SubSubjects = %v", names(subs))
	}
	if got := SubSubjects(sampleTaxonomy(), ""); got != nil {
		t.Errorf("SubSubjects with empty parent = %v, want none", names(got))
	}
}

func TestAddMainSubject(t *testing.T) {
	subjects, created := AddMainSubject(sampleTaxonomy())
	if created.ID == "" || !created.IsMain() {
		t.Fatalf("created = %+v", created)
	}
	if created.Order != 3 {
		t.Errorf("created.Order = %d, want 3", created.Order)
	}
	if len(subjects) != 6 {
		t.Errorf("len = %d, want 6", len(subjects))
	}

	// First subject of an empty taxonomy starts at order 0.
	_, first := AddMainSubject(nil)
	if first.Order != 0 {
		t.Errorf("first.Order = %d, want 0", first.Order)
	}
}

func TestAddSubSubject(t *testing.T) {
	base := sampleTaxonomy()
	base[0].Color = models.SubjectColor{Bg: "#6AB5FF", Text: "#FFFFFF"}

	subjects, created := AddSubSubject(base, "s1")
	if created.ParentID != "s1" {
		t.Fatalf("created.ParentID = %q", created.ParentID)
	}
	if created.Color != base[0].Color {
		t.Errorf("sub-subject did not inherit parent color: %+v", created.Color)
	}
	if created.Order != 2 {
		t.Errorf("created.Order = %d, want 2", created.Order)
	}
	if len(subjects) != len(base)+1 {
		t.Errorf("len = %d, want %d", len(subjects), len(base)+1)
	}

	// Missing parent falls back to the default color pair.
	_, orphan := AddSubSubject(nil, "ghost")
	if orphan.Color.Bg != "#CCCCCC" {
		t.Errorf("orphan color = %+v", orphan.Color)
	}
}

func TestUpdateSubject(t *testing.T) {
	name := "代数"
	teacher := "高橋"
	got := UpdateSubject(sampleTaxonomy(), "s1", SubjectPatch{Name: &name, Teacher: &teacher})
	if s := FindSubjectByID(got, "s1"); s.Name != "代数" || s.Teacher != "高橋" {
		t.Errorf("patched subject = %+v", s)
	}
	// Unpatched fields survive.
	if s := FindSubjectByID(got, "s1"); s.Order != 0 {
		t.Errorf("Order changed to %d", s.Order)
	}

	// Unknown id is a no-op.
	before := sampleTaxonomy()
	after := UpdateSubject(before, "ghost", SubjectPatch{Name: &name})
	if len(after) != len(before) {
		t.Error("no-op update changed the list")
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("subject %d changed: %+v", i, after[i])
		}
	}
}

func TestDeleteSubjectCascade(t *testing.T) {
	remaining, removed := DeleteSubject(sampleTaxonomy(), "s1", 1700000000000)

	if len(removed) != 3 {
		t.Fatalf("len(removed) = %d, want 3", len(removed))
	}
	for _, d := range removed {
		if d.DeletedAt != 1700000000000 {
			t.Errorf("DeletedAt = %d, want shared timestamp", d.DeletedAt)
		}
	}
	if len(remaining) != 2 {
		t.Fatalf("len(remaining) = %d, want 2", len(remaining))
	}
	for _, s := range remaining {
		if s.ID == "s1" || s.ParentID == "s1" {
			t.Errorf("subject %q survived the cascade", s.Name)
		}
	}
}

func TestDeleteSubSubjectOnly(t *testing.T) {
	remaining, removed := DeleteSubject(sampleTaxonomy(), "s2", 1)
	if len(removed) != 1 || removed[0].ID != "s2" {
		t.Fatalf("removed = %+v", removed)
	}
	if len(remaining) != 4 {
		t.Errorf("len(remaining) = %d, want 4", len(remaining))
	}
}

func TestDeleteSubjectUnknownID(t *testing.T) {
	remaining, removed := DeleteSubject(sampleTaxonomy(), "ghost", 1)
	if removed != nil || len(remaining) != 5 {
		t.Errorf("unknown id removed something: %+v", removed)
	}
}

func TestMergeDeletedLogLastDeleteWins(t *testing.T) {
	log := []models.DeletedSubject{
		{Subject: models.Subject{ID: "old1", Name: "数学"}, DeletedAt: 1},
		{Subject: models.Subject{ID: "old2", Name: "英語"}, DeletedAt: 2},
	}
	removed := []models.DeletedSubject{
		{Subject: models.Subject{ID: "new1", Name: "数学"}, DeletedAt: 3},
	}

	merged := MergeDeletedLog(log, removed)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}

	var mathEntries int
	for _, d := range merged {
		if d.Name == "数学" {
			mathEntries++
			if d.ID != "new1" {
				t.Errorf("old 数学 entry survived: %+v", d)
			}
		}
	}
	if mathEntries != 1 {
		t.Errorf("数学 entries = %d, want 1", mathEntries)
	}

	if got := MergeDeletedLog(log, nil); len(got) != 2 {
		t.Errorf("merge with nothing removed changed the log")
	}
}

func TestRestoreSubjects(t *testing.T) {
	live, removed := DeleteSubject(sampleTaxonomy(), "s1", 5)
	log := MergeDeletedLog(nil, removed)

	restored, err := RestoreSubjects(live, log)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 5 {
		t.Fatalf("len(restored) = %d, want 5", len(restored))
	}

	var main *models.Subject
	for i := range restored {
		if restored[i].Name == "数学" {
			main = &restored[i]
		}
	}
	if main == nil {
		t.Fatal("restored main subject missing")
	}
	if main.ID == "s1" {
		t.Error("restored main kept its old id")
	}

	for _, s := range restored {
		if s.Name == "数学演習" || s.Name == "数学探究" {
			if s.ParentID != main.ID {
				t.Errorf("%s.ParentID = %q, want new parent id %q", s.Name, s.ParentID, main.ID)
			}
			if s.ID == "s2" || s.ID == "s3" {
				t.Errorf("%s kept its old id", s.Name)
			}
		}
	}
}

func TestRestoreSubjectsEmptyLog(t *testing.T) {
	_, err := RestoreSubjects(sampleTaxonomy(), nil)
	if !errors.Is(err, ErrNothingToRestore) {
		t.Errorf("err = %v, want ErrNothingToRestore", err)
	}
}

func TestReorderSubjects(t *testing.T) {
	subjects := []models.Subject{
		{ID: "a", Name: "A", Order: 0},
		{ID: "b", Name: "B", Order: 1},
		{ID: "c", Name: "C", Order: 2},
	}

	got := ReorderSubjects(subjects, "c", "a")
	mains := MainSubjects(got)
	want := []string{"C", "A", "B"}
	for i, name := range want {
		if mains[i].Name != name || mains[i].Order != i {
			t.Fatalf("after drag: %v (orders %d %d %d), want %v with dense orders",
				names(mains), mains[0].Order, mains[1].Order, mains[2].Order, want)
		}
	}
}

func TestReorderSubjectsRejectsCrossScope(t *testing.T) {
	subjects := sampleTaxonomy()
	tests := []struct {
		name    string
		dragged string
		target  string
	}{
		{"main onto sub", "s4", "s2"},
		{"sub onto main", "s2", "s4"},
		{"self", "s1", "s1"},
		{"unknown dragged", "ghost", "s1"},
		{"unknown target", "s1", "ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReorderSubjects(subjects, tt.dragged, tt.target)
			if len(got) != len(subjects) {
				t.Fatalf("length changed")
			}
			for i := range subjects {
				if got[i] != subjects[i] {
					t.Errorf("cross-scope drag changed subject %d", i)
				}
			}
		})
	}
}

func TestReorderSubSubjects(t *testing.T) {
	got := ReorderSubjects(sampleTaxonomy(), "s3", "s2")
	subs := SubSubjects(got, "s1")
	if subs[0].ID != "s3" || subs[1].ID != "s2" {
		t.Errorf("sub order = %v", names(subs))
	}
	if subs[0].Order != 0 || subs[1].Order != 1 {
		t.Errorf("orders not renumbered: %d, %d", subs[0].Order, subs[1].Order)
	}
	// Main subjects untouched.
	if mains := MainSubjects(got); len(mains) != 3 {
		t.Errorf("main count changed: %d", len(mains))
	}
}

func TestResetColors(t *testing.T) {
	subjects := []models.Subject{
		{ID: "x", Name: "数学", Color: models.SubjectColor{Bg: "#000000", Text: "#000000"}},
		{ID: "y", Name: "独自科目", Color: models.SubjectColor{Bg: "#123456", Text: "#654321"}},
	}
	got := ResetColors(subjects, models.DefaultSubjects())
	if got[0].Color.Bg != "#6AB5FF" {
		t.Errorf("数学 color = %+v, want default", got[0].Color)
	}
	if got[1].Color.Bg != "#123456" {
		t.Errorf("unmatched subject color changed: %+v", got[1].Color)
	}
}

func TestEffectiveTeacher(t *testing.T) {
	parent := models.Subject{ID: "s1", Name: "数学", Teacher: "山田"}
	tests := []struct {
		name    string
		subject models.Subject
		parent  *models.Subject
		want    string
	}{
		{
			name:    "sub subject inherits parent teacher",
			subject: models.Subject{ID: "s2", Name: "数学演習", ParentID: "s1", UseParentTeacher: true},
			parent:  &parent,
			want:    "山田",
		},
		{
			name:    "inheriting overrides a stored value",
			subject: models.Subject{ID: "s2", ParentID: "s1", UseParentTeacher: true, Teacher: "誰か"},
			parent:  &parent,
			want:    "山田",
		},
		{
			name:    "own teacher without inheritance",
			subject: models.Subject{ID: "s3", ParentID: "s1", Teacher: "鈴木"},
			parent:  &parent,
			want:    "鈴木",
		},
		{
			name:    "inheriting with missing parent",
			subject: models.Subject{ID: "s2", ParentID: "s1", UseParentTeacher: true},
			want:    "",
		},
		{
			name:    "main subject ignores the flag",
			subject: models.Subject{ID: "s1", Teacher: "山田", UseParentTeacher: true},
			want:    "山田",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveTeacher(tt.subject, tt.parent); got != tt.want {
				t.Errorf("EffectiveTeacher() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTeacher(t *testing.T) {
	subjects := sampleTaxonomy()
	tests := []struct {
		name       string
		subject    string
		subSubject string
		want       string
		wantLocked bool
	}{
		{name: "main with teacher", subject: "数学", want: "山田", wantLocked: true},
		{name: "sub inheriting", subject: "数学", subSubject: "数学演習", want: "山田", wantLocked: true},
		{name: "sub with own teacher", subject: "数学", subSubject: "数学探究", want: "鈴木", wantLocked: true},
		{name: "main without teacher", subject: "英語", want: "", wantLocked: false},
		{name: "dangling main", subject: "存在しない", want: "", wantLocked: false},
		{name: "dangling sub falls back to main", subject: "数学", subSubject: "存在しない", want: "山田", wantLocked: true},
		{name: "empty selection", want: "", wantLocked: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, locked := ResolveTeacher(subjects, tt.subject, tt.subSubject)
			if got != tt.want || locked != tt.wantLocked {
				t.Errorf("ResolveTeacher() = %q, %v; want %q, %v", got, locked, tt.want, tt.wantLocked)
			}
		})
	}
}

func TestColorFor(t *testing.T) {
	subjects := sampleTaxonomy()
	subjects[0].Color = models.SubjectColor{Bg: "#6AB5FF", Text: "#FFFFFF"}

	if color, ok := ColorFor(subjects, "数学"); !ok || color.Bg != "#6AB5FF" {
		t.Errorf("ColorFor(数学) = %+v, %v", color, ok)
	}
	if _, ok := ColorFor(subjects, "存在しない"); ok {
		t.Error("unknown name reported a color")
	}
}
