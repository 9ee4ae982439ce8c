package types

// Note is free text attached to exactly one application and deleted with it.
type Note struct {
	Audit
	ApplicationID int64  `json:"application_id"`
	Note          string `json:"note"`
}

// NoteCreate is the insert payload for a note.
type NoteCreate struct {
	ApplicationID int64  `json:"application_id"`
	Note          string `json:"note"`
	CreatedBy     string `json:"created_by"`
	ModifiedBy    string `json:"modified_by"`
}

// Validate checks the required create fields.
func (n NoteCreate) Validate() error {
	if n.ApplicationID == 0 {
		return &ValidationError{Field: "application_id", Message: "is required"}
	}
	if n.Note == "" {
		return &ValidationError{Field: "note", Message: "is required"}
	}
	return validateActors(n.CreatedBy, n.ModifiedBy)
}

// NoteUpdate is the partial-update payload for a note.
type NoteUpdate struct {
	Note       *string `json:"note"`
	ModifiedBy string  `json:"modified_by"`
}

// NoteFilter holds the whitelisted equality filters for note lists.
type NoteFilter struct {
	ApplicationID int64
}
