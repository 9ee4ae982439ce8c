package types

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no row with the given id exists for the
// resource. The API layer maps it to 404.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ValidationError reports a rejected request value, such as a sort field
// outside an entity's whitelist. The API layer maps it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a unique-constraint violation on a business key,
// such as a duplicate job search site name. The API layer maps it to 409.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
}

// ForeignKeyError reports a write that references a nonexistent parent row.
// The API layer maps it to 422.
type ForeignKeyError struct {
	Message string
}

func (e *ForeignKeyError) Error() string {
	if e.Message == "" {
		return "foreign key constraint failed"
	}
	return e.Message
}

// ErrNoDefault is returned by default-value resolution when neither a
// user-specific nor a system row is active for the requested field. The
// caller falls back to the schema-level static default.
var ErrNoDefault = errors.New("no default value configured")
