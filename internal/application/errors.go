package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrEvaluationNotFound = errors.New("evaluation folder not found")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrMalformedSnapshot  = errors.New("malformed snapshot")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SnapshotError represents a snapshot that could not be read or parsed
type SnapshotError struct {
	Entity   string
	Category string
	File     string
	Err      error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("%s/%s: cannot use snapshot %s: %v", e.Entity, e.Category, e.File, e.Err)
}

func (e *SnapshotError) Is(target error) bool {
	return target == ErrMalformedSnapshot
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}
