package services

import (
	"fmt"
	"strings"
)

// ValidationError reports every offending input field at once instead of
// failing on the first one.
type ValidationError struct {
	Fields []string
}

func (err *ValidationError) Error() string {
	if len(err.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid value for %s", strings.Join(err.Fields, ", "))
}

func newValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PreconditionError means the operation needs more data than is currently
// available. The caller decides how to present it.
type PreconditionError struct {
	Reason string
}

func (err *PreconditionError) Error() string {
	return err.Reason
}

// PersistenceError wraps an unreadable or corrupt stored blob. Callers fall
// back to safe defaults instead of surfacing it as a hard failure.
type PersistenceError struct {
	Key string
	Err error
}

func (err *PersistenceError) Error() string {
	return fmt.Sprintf("stored blob %q unreadable: %v", err.Key, err.Err)
}

func (err *PersistenceError) Unwrap() error {
	return err.Err
}

// ConfigurationError means an internal lookup table is missing an expected
// key. Unreachable while the enums stay exhaustive, but never allowed to
// propagate as a panic.
type ConfigurationError struct {
	Table string
	Key   string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("lookup table %s has no entry for %q", err.Table, err.Key)
}
