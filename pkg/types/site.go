package types

// JobSearchSite is a job board. Its name is unique; a duplicate insert or
// update surfaces as a ConflictError, not a raw constraint failure.
type JobSearchSite struct {
	Audit
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// JobSearchSiteCreate is the insert payload for a job search site.
type JobSearchSiteCreate struct {
	Name       string  `json:"name"`
	URL        *string `json:"url"`
	CreatedBy  string  `json:"created_by"`
	ModifiedBy string  `json:"modified_by"`
}

// Validate checks the required create fields.
func (s JobSearchSiteCreate) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return validateActors(s.CreatedBy, s.ModifiedBy)
}

// JobSearchSiteUpdate is the partial-update payload for a job search site.
type JobSearchSiteUpdate struct {
	Name       *string `json:"name"`
	URL        *string `json:"url"`
	ModifiedBy string  `json:"modified_by"`
}
