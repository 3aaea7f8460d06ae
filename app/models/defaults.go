package models

// DefaultSubjects returns the built-in subject list used when no settings
// have been saved yet and by the "reset subjects" operation. Order follows
// list position.
func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "1", Name: "国語", Color: SubjectColor{Bg: "#FF3232", Text: "#FFFFFF"}, Order: 0},
		{ID: "2", Name: "数学", Color: SubjectColor{Bg: "#6AB5FF", Text: "#FFFFFF"}, Order: 1},
		{ID: "3", Name: "理科", Color: SubjectColor{Bg: "#91D9A5", Text: "#FFFFFF"}, Order: 2},
		{ID: "4", Name: "社会", Color: SubjectColor{Bg: "#FFAE00", Text: "#FFFFFF"}, Order: 3},
		{ID: "5", Name: "英語", Color: SubjectColor{Bg: "#BD6BFF", Text: "#FFFFFF"}, Order: 4},
		{ID: "6", Name: "体育", Color: SubjectColor{Bg: "#CCCCCC", Text: "#FFFFFF"}, Order: 5},
		{ID: "7", Name: "音楽", Color: SubjectColor{Bg: "#CCCCCC", Text: "#FFFFFF"}, Order: 6},
		{ID: "8", Name: "美術", Color: SubjectColor{Bg: "#CCCCCC", Text: "#FFFFFF"}, Order: 7},
	}
}

// DefaultPeriodTimes returns the built-in period schedule.
func DefaultPeriodTimes() []PeriodTime {
	return []PeriodTime{
		{Start: "08:50", End: "09:40"},
		{Start: "09:50", End: "10:40"},
		{Start: "10:50", End: "11:40"},
		{Start: "11:50", End: "12:40"},
		{Start: "13:30", End: "14:20"},
		{Start: "14:30", End: "15:20"},
	}
}

// DefaultSettings is the per-key fallback for the "settings" blob.
func DefaultSettings() Settings {
	return Settings{
		SchoolInfo: SchoolInfo{
			SchoolName: "福武高校",
			Department: "普通科",
			ClassName:  "1-1",
		},
		Subjects:    DefaultSubjects(),
		PeriodTimes: DefaultPeriodTimes(),
	}
}
