package models

// SubjectColor is the background/text color pair used to paint a subject.
type SubjectColor struct {
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

// Subject is one node of the subject taxonomy. A subject with an empty
// ParentID is a main subject; otherwise it is a sub-subject of the main
// subject with that id. Nesting is at most one level deep.
type Subject struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Color            SubjectColor `json:"color"`
	Teacher          string       `json:"teacher,omitempty"`
	ParentID         string       `json:"parentId,omitempty"`
	Order            int          `json:"order"`
	UseParentTeacher bool         `json:"useParentTeacher,omitempty"`
}

// IsMain reports whether the subject is a top-level main subject.
func (s Subject) IsMain() bool {
	return s.ParentID == ""
}

// DeletedSubject is a recycle-log entry: a subject snapshot plus the moment
// it was deleted (unix milliseconds). At most one live entry exists per
// subject name; a later deletion with the same name supersedes the old one.
type DeletedSubject struct {
	Subject
	DeletedAt int64 `json:"deletedAt"`
}
