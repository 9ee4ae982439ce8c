package types

// Client is the end customer a recruiting agency is hiring for. Everything
// about it is optional except the audit trail.
type Client struct {
	Audit
	Name *string `json:"name"`
}

// ClientCreate is the insert payload for a client.
type ClientCreate struct {
	Name       *string `json:"name"`
	CreatedBy  string  `json:"created_by"`
	ModifiedBy string  `json:"modified_by"`
}

// Validate checks the required create fields.
func (c ClientCreate) Validate() error {
	return validateActors(c.CreatedBy, c.ModifiedBy)
}

// ClientUpdate is the partial-update payload for a client.
type ClientUpdate struct {
	Name       *string `json:"name"`
	ModifiedBy string  `json:"modified_by"`
}
