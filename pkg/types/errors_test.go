package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "company", ID: 42}
	assert.Equal(t, "company 42 not found", err.Error())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "is required"}
	assert.Equal(t, "name: is required", err.Error())
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Resource: "job search site", Field: "name", Value: "LinkedIn"}
	assert.Equal(t, `job search site with name "LinkedIn" already exists`, err.Error())
}

func TestErrorsAsMatchesWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), &NotFoundError{Resource: "note", ID: 7})

	var nf *NotFoundError
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, int64(7), nf.ID)
}
