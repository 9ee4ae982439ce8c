package types

// Static defaults applied when the field is omitted on application create.
const (
	DefaultStatus      = "Pending"
	DefaultWorkSetting = "Remote"
)

// Application is one job application. The company and client references are
// each independently optional and survive deletion of the referenced row.
type Application struct {
	Audit
	Status         string  `json:"status"`
	Requirement    *string `json:"requirement"`
	WorkSetting    string  `json:"work_setting"`
	Compensation   *string `json:"compensation"`
	Position       *string `json:"position"`
	JobDescription *string `json:"job_description"`
	JobLink        *string `json:"job_link"`
	Location       *string `json:"location"`
	Resume         *string `json:"resume"`
	CoverLetter    *string `json:"cover_letter"`
	EnteredIWD     bool    `json:"entered_iwd"`
	DateClose      *string `json:"date_close"`
	CompanyID      *int64  `json:"company_id"`
	ClientID       *int64  `json:"client_id"`
}

// ApplicationSummary is an application list row enriched with the names of
// its referenced company, client, and first contact.
type ApplicationSummary struct {
	Application
	CompanyName *string `json:"company_name"`
	ClientName  *string `json:"client_name"`
	ContactName *string `json:"contact_name"`
}

// ApplicationDetail is the get-by-id shape: the application, denormalized
// company and client columns, and all of its contacts with their emails and
// phones.
type ApplicationDetail struct {
	Application
	CompanyName    *string         `json:"company_name"`
	CompanyAddress *string         `json:"company_address"`
	CompanyCity    *string         `json:"company_city"`
	CompanyState   *string         `json:"company_state"`
	CompanyZip     *string         `json:"company_zip"`
	CompanyCountry *string         `json:"company_country"`
	ClientName     *string         `json:"client_name"`
	Contacts       []ContactDetail `json:"contacts"`
}

// ApplicationCreate is the insert payload for an application. Status and
// WorkSetting fall back to the resolved defaults when empty.
type ApplicationCreate struct {
	Status         string  `json:"status"`
	Requirement    *string `json:"requirement"`
	WorkSetting    string  `json:"work_setting"`
	Compensation   *string `json:"compensation"`
	Position       *string `json:"position"`
	JobDescription *string `json:"job_description"`
	JobLink        *string `json:"job_link"`
	Location       *string `json:"location"`
	Resume         *string `json:"resume"`
	CoverLetter    *string `json:"cover_letter"`
	EnteredIWD     bool    `json:"entered_iwd"`
	DateClose      *string `json:"date_close"`
	CompanyID      *int64  `json:"company_id"`
	ClientID       *int64  `json:"client_id"`
	CreatedBy      string  `json:"created_by"`
	ModifiedBy     string  `json:"modified_by"`
}

// Validate checks the required create fields.
func (a ApplicationCreate) Validate() error {
	return validateActors(a.CreatedBy, a.ModifiedBy)
}

// ApplicationUpdate is the partial-update payload for an application.
type ApplicationUpdate struct {
	Status         *string `json:"status"`
	Requirement    *string `json:"requirement"`
	WorkSetting    *string `json:"work_setting"`
	Compensation   *string `json:"compensation"`
	Position       *string `json:"position"`
	JobDescription *string `json:"job_description"`
	JobLink        *string `json:"job_link"`
	Location       *string `json:"location"`
	Resume         *string `json:"resume"`
	CoverLetter    *string `json:"cover_letter"`
	EnteredIWD     *bool   `json:"entered_iwd"`
	DateClose      *string `json:"date_close"`
	CompanyID      *int64  `json:"company_id"`
	ClientID       *int64  `json:"client_id"`
	ModifiedBy     string  `json:"modified_by"`
}

// ApplicationFilter holds the whitelisted equality filters for application
// lists.
type ApplicationFilter struct {
	Status    string
	CompanyID int64
	ClientID  int64
}

// ApplicationSync correlates an application with its copy in an external
// system. It is owned by exactly one application and is deleted with it.
type ApplicationSync struct {
	Audit
	SQLiteID  int64  `json:"sqlite_id"`
	MongoDBID string `json:"mongodb_id"`
}

// ApplicationSyncCreate is the insert payload for a sync record.
type ApplicationSyncCreate struct {
	SQLiteID   int64  `json:"sqlite_id"`
	MongoDBID  string `json:"mongodb_id"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

// Validate checks the required create fields.
func (a ApplicationSyncCreate) Validate() error {
	if a.SQLiteID == 0 {
		return &ValidationError{Field: "sqlite_id", Message: "is required"}
	}
	if a.MongoDBID == "" {
		return &ValidationError{Field: "mongodb_id", Message: "is required"}
	}
	return validateActors(a.CreatedBy, a.ModifiedBy)
}
