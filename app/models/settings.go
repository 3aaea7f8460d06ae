package models

// SchoolInfo is the school metadata shown in the page title.
type SchoolInfo struct {
	SchoolName string `json:"schoolName"`
	Department string `json:"department"`
	ClassName  string `json:"className"`
}

// PeriodTime is the wall-clock window of one period. Index+1 in the
// settings list is the period number.
type PeriodTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Location identifies the region used by the weather collaborator.
type Location struct {
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
}

// Settings is the aggregate persisted under the "settings" key and replaced
// wholesale on every settings save.
type Settings struct {
	SchoolInfo  SchoolInfo   `json:"schoolInfo"`
	Subjects    []Subject    `json:"subjects"`
	PeriodTimes []PeriodTime `json:"periodTimes"`
	Location    Location     `json:"location"`
}
