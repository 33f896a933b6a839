package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound covers absent, soft-deleted, and foreign-owned entities
	// alike: the three cases are deliberately indistinguishable to callers
	// so that thread and translation IDs cannot be enumerated.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCategory means a (primary, sub) pair is not present in the
	// category mapping table.
	ErrInvalidCategory = errors.New("invalid category combination")

	// ErrInvalidAudio means the speech-to-text collaborator rejected or
	// could not decode the supplied audio bytes.
	ErrInvalidAudio = errors.New("invalid audio")

	// ErrExternalService is an undifferentiated collaborator failure from
	// the translation or text-to-speech stage.
	ErrExternalService = errors.New("external service failure")

	// ErrUnauthorized means no profile identity was carried in the context.
	ErrUnauthorized = errors.New("unauthorized")

	ErrValidation    = errors.New("validation error")
	ErrAlreadyExists = errors.New("already exists")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
