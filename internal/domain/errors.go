package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use YYYY-MM-DD HH:MM")
	ErrPastTime          = errors.New("target time must be in the future")
	ErrDuplicateCodename = errors.New("an operation with this codename already exists")
	ErrEmptyCodename     = errors.New("codename is required")
	ErrEmptyName         = errors.New("template name is required")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrAlreadyRecovered  = errors.New("recovery already ran")
)

// ValidationError is returned synchronously to the command layer when a
// request is rejected before anything is written.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// RecoveryError describes a stored mission that could not be re-armed.
type RecoveryError struct {
	TenantID string
	Codename string
	Raw      string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("unparseable target time %q for %s/%s", e.Raw, e.TenantID, e.Codename)
}
