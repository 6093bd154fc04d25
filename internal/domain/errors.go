package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrExternalService = errors.New("external service error")
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// ConflictError reports a write that would break a hierarchy invariant.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError with a formatted reason.
func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// External collaborators reported in ServiceError.Service.
const (
	ServiceFetcher   = "fetcher"
	ServiceExtractor = "extractor"
	ServiceGenerator = "generator"
)

// ServiceError is a failure of an external collaborator (content fetcher,
// AI extractor, AI generator). It matches both ErrExternalService and the
// underlying cause with errors.Is.
type ServiceError struct {
	Service   string
	Op        string
	Temporary bool
	Err       error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() []error { return []error{ErrExternalService, e.Err} }

// NewServiceError wraps err as a collaborator failure.
func NewServiceError(service, op string, temporary bool, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Temporary: temporary, Err: err}
}

// IsTemporary reports whether err is a collaborator failure worth retrying.
// Errors that are not ServiceErrors are treated as permanent.
func IsTemporary(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Temporary
	}
	return false
}
