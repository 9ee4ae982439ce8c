package types

import "time"

// SystemUser is the user id that owns system-wide defaults. Resolution
// falls back to it when no user-specific row is active.
const SystemUser = "system"

// DefaultValue is a per-(table, field, user) override of a system default.
// It is deactivated rather than soft-deleted, so it carries is_active in
// place of the is_deleted marker the entities share. At most one row may be
// active for a given (table, field, user).
type DefaultValue struct {
	ID          int64     `json:"id"`
	TableName   string    `json:"table_name"`
	FieldName   string    `json:"field_name"`
	Value       string    `json:"default_value"`
	DataType    string    `json:"data_type"`
	UserID      string    `json:"user_id"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
	CreatedBy   string    `json:"created_by"`
	ModifiedBy  string    `json:"modified_by"`
}

// DefaultValueCreate is the insert payload for a default override. UserID
// falls back to SystemUser when empty.
type DefaultValueCreate struct {
	TableName   string  `json:"table_name"`
	FieldName   string  `json:"field_name"`
	Value       string  `json:"default_value"`
	DataType    string  `json:"data_type"`
	UserID      string  `json:"user_id"`
	Description *string `json:"description"`
	CreatedBy   string  `json:"created_by"`
	ModifiedBy  string  `json:"modified_by"`
}

// Validate checks the required create fields.
func (d DefaultValueCreate) Validate() error {
	if d.TableName == "" {
		return &ValidationError{Field: "table_name", Message: "is required"}
	}
	if d.FieldName == "" {
		return &ValidationError{Field: "field_name", Message: "is required"}
	}
	if d.Value == "" {
		return &ValidationError{Field: "default_value", Message: "is required"}
	}
	if d.DataType == "" {
		return &ValidationError{Field: "data_type", Message: "is required"}
	}
	return validateActors(d.CreatedBy, d.ModifiedBy)
}

// DefaultValueUpdate is the partial-update payload for a default override.
// Setting IsActive to false deactivates the row without removing it.
type DefaultValueUpdate struct {
	Value       *string `json:"default_value"`
	DataType    *string `json:"data_type"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	ModifiedBy  string  `json:"modified_by"`
}

// DefaultValueFilter holds the whitelisted equality filters for default
// value lists.
type DefaultValueFilter struct {
	TableName string
	UserID    string
}
