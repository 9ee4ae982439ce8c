package types

// Static defaults applied when the field is omitted on company create.
const (
	DefaultCountry = "United States"
	DefaultJobType = "Technology"
)

// Company is an employer or recruiting agency.
type Company struct {
	Audit
	Name    string  `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country string  `json:"country"`
	JobType string  `json:"job_type"`
}

// CompanyCreate is the insert payload for a company. Country and JobType
// fall back to the resolved defaults when empty.
type CompanyCreate struct {
	Name       string  `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zip        *string `json:"zip"`
	Country    string  `json:"country"`
	JobType    string  `json:"job_type"`
	CreatedBy  string  `json:"created_by"`
	ModifiedBy string  `json:"modified_by"`
}

// Validate checks the required create fields.
func (c CompanyCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return validateActors(c.CreatedBy, c.ModifiedBy)
}

// CompanyUpdate is the partial-update payload for a company. Nil fields are
// left untouched; ModifiedBy is always applied.
type CompanyUpdate struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zip        *string `json:"zip"`
	Country    *string `json:"country"`
	JobType    *string `json:"job_type"`
	ModifiedBy string  `json:"modified_by"`
}

// CompanyFilter holds the whitelisted equality filters for company lists.
type CompanyFilter struct {
	JobType string
}

// validateActors checks the audit actor fields required on every create.
func validateActors(createdBy, modifiedBy string) error {
	if createdBy == "" {
		return &ValidationError{Field: "created_by", Message: "is required"}
	}
	if modifiedBy == "" {
		return &ValidationError{Field: "modified_by", Message: "is required"}
	}
	return nil
}
