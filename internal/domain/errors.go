package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrAuthRequired     = errors.New("auth required")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrActionInFlight   = errors.New("action already in flight")
	ErrTaskFailed       = errors.New("task failed")
	ErrMalformedResult  = errors.New("malformed task result")
)

// Upload precondition failures. Both are validation errors.
var (
	ErrUnsupportedMediaType = fmt.Errorf("%w: unsupported media type", ErrValidation)
	ErrPayloadTooLarge      = fmt.Errorf("%w: payload too large", ErrValidation)
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

// TaskFailureKind classifies why a remote task did not produce a result.
type TaskFailureKind string

const (
	TaskFailureRemote    TaskFailureKind = "remote"
	TaskFailureTimeout   TaskFailureKind = "timeout"
	TaskFailureMalformed TaskFailureKind = "malformed"
	TaskFailureTransport TaskFailureKind = "transport"
)

// GenericTaskMessage is shown when a task failed without saying why.
const GenericTaskMessage = "the request could not be completed, please try again"

// TaskFailure is the single terminal error of a remote task invocation.
type TaskFailure struct {
	Task    TaskName
	Kind    TaskFailureKind
	Message string
}

func (e *TaskFailure) Error() string {
	return fmt.Sprintf("task %s failed (%s): %s", e.Task, e.Kind, e.UserMessage())
}

// UserMessage returns the message to surface to the user: the task's own
// message when it sent one, a generic one otherwise.
func (e *TaskFailure) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericTaskMessage
}

// Is makes every TaskFailure match ErrTaskFailed, and malformed ones also
// match ErrMalformedResult.
func (e *TaskFailure) Is(target error) bool {
	switch target {
	case ErrTaskFailed:
		return true
	case ErrMalformedResult:
		return e.Kind == TaskFailureMalformed
	}
	return false
}
