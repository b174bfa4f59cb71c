package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned by the template store when the
	// (employee, finger) uniqueness constraint rejects an insert.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrEmployeeNotInCompany is returned by the template store when the
	// employee does not exist or belongs to another company.
	ErrEmployeeNotInCompany = errors.New("employee does not belong to company")
	// ErrAuditInProgress is returned when a duplicate sweep is requested
	// while another one is still running.
	ErrAuditInProgress = errors.New("duplicate audit already in progress")
	// ErrMatcherUnavailable marks matcher failures caused by transport or
	// deadlines rather than by the sample itself.
	ErrMatcherUnavailable = errors.New("matcher unavailable")
)

// ValidationError reports malformed caller input. It is produced before any
// matcher or store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ExtractionError reports that the matcher could not build a template from
// the sample at Index.
type ExtractionError struct {
	Index int
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract template from sample %d: %v", e.Index, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// FusionError reports that the matcher could not combine per-sample
// templates into an enrollment template.
type FusionError struct {
	Err error
}

func (e *FusionError) Error() string {
	return fmt.Sprintf("failed to fuse templates: %v", e.Err)
}

func (e *FusionError) Unwrap() error {
	return e.Err
}

// DuplicateRecordError reports that a template for the same physical finger
// or the same (employee, finger) pair is already enrolled.
type DuplicateRecordError struct {
	EmployeeID int64
	Finger     Finger
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("fingerprint already enrolled: %s of employee %d", e.Finger.DisplayName(), e.EmployeeID)
}

// StoreError wraps an opaque persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a matched template whose employee is missing from
// the employee directory.
type IntegrityError struct {
	TemplateID int64
	EmployeeID int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("template %d references unknown employee %d", e.TemplateID, e.EmployeeID)
}
