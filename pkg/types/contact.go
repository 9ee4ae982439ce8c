package types

// Static defaults applied when the field is omitted on contact create. The
// schema declares the same values, so inserts through other paths agree.
const (
	DefaultTitle     = "Recruiter"
	DefaultEmailType = "Work"
	DefaultPhoneType = "Cell"
)

// Contact is a person attached to the job search: a recruiter, hiring
// manager, or lead. The company, application, and client references are each
// independently optional.
type Contact struct {
	Audit
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Title         string  `json:"title"`
	Linkedin      *string `json:"linkedin"`
	ContactType   string  `json:"contact_type"`
	CompanyID     *int64  `json:"company_id"`
	ApplicationID *int64  `json:"application_id"`
	ClientID      *int64  `json:"client_id"`

	// Name is first and last name joined, computed on reads.
	Name string `json:"name,omitempty"`
}

// ContactEmail is an email address owned by exactly one contact.
type ContactEmail struct {
	Audit
	ContactID int64  `json:"contact_id"`
	Email     string `json:"email"`
	EmailType string `json:"email_type"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactPhone is a phone number owned by exactly one contact.
type ContactPhone struct {
	Audit
	ContactID int64  `json:"contact_id"`
	Phone     string `json:"phone"`
	PhoneType string `json:"phone_type"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactDetail is a contact with its owned emails and phones, each ordered
// primary-first.
type ContactDetail struct {
	Contact
	Emails []ContactEmail `json:"emails"`
	Phones []ContactPhone `json:"phones"`
}

// ContactEmailCreate is the nested email payload on contact create.
type ContactEmailCreate struct {
	Email     string `json:"email"`
	EmailType string `json:"email_type"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactPhoneCreate is the nested phone payload on contact create.
type ContactPhoneCreate struct {
	Phone     string `json:"phone"`
	PhoneType string `json:"phone_type"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactCreate is the insert payload for a contact plus zero or more nested
// emails and phones, written in one transaction.
type ContactCreate struct {
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Title         string               `json:"title"`
	Linkedin      *string              `json:"linkedin"`
	ContactType   string               `json:"contact_type"`
	CompanyID     *int64               `json:"company_id"`
	ApplicationID *int64               `json:"application_id"`
	ClientID      *int64               `json:"client_id"`
	Emails        []ContactEmailCreate `json:"emails"`
	Phones        []ContactPhoneCreate `json:"phones"`
	CreatedBy     string               `json:"created_by"`
	ModifiedBy    string               `json:"modified_by"`
}

// Validate checks the required create fields.
func (c ContactCreate) Validate() error {
	if c.FirstName == "" {
		return &ValidationError{Field: "first_name", Message: "is required"}
	}
	if c.LastName == "" {
		return &ValidationError{Field: "last_name", Message: "is required"}
	}
	if c.ContactType == "" {
		return &ValidationError{Field: "contact_type", Message: "is required"}
	}
	for _, e := range c.Emails {
		if e.Email == "" {
			return &ValidationError{Field: "emails.email", Message: "is required"}
		}
	}
	for _, p := range c.Phones {
		if p.Phone == "" {
			return &ValidationError{Field: "phones.phone", Message: "is required"}
		}
	}
	return validateActors(c.CreatedBy, c.ModifiedBy)
}

// ContactUpdate is the partial-update payload for a contact.
type ContactUpdate struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Title         *string `json:"title"`
	Linkedin      *string `json:"linkedin"`
	ContactType   *string `json:"contact_type"`
	CompanyID     *int64  `json:"company_id"`
	ApplicationID *int64  `json:"application_id"`
	ClientID      *int64  `json:"client_id"`
	ModifiedBy    string  `json:"modified_by"`
}

// ContactFilter holds the whitelisted equality filters for contact lists.
type ContactFilter struct {
	CompanyID     int64
	ApplicationID int64
	ClientID      int64
	ContactType   string
}
