package models

// ClassRecord holds everything a user enters for one timetable slot.
// Subject and SubSubject reference Subject.Name, not Subject.ID; the store
// accepts any strings and readers must tolerate dangling references.
type ClassRecord struct {
	Subject    string `json:"subject"`
	SubSubject string `json:"subSubject,omitempty"`
	Teacher    string `json:"teacher"`
	Content    string `json:"content"`
	Location   string `json:"location"`
	Materials  string `json:"materials"`
	Homework   string `json:"homework"`
}

// CellData maps a slot key ("M/D-period") to the record stored there.
// Absence of a key means the slot is empty.
type CellData map[string]ClassRecord
