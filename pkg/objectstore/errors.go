package objectstore

import (
	"errors"
	"fmt"
)

// Common object-store errors.
var (
	// ErrNotFound indicates the requested object was not found.
	ErrNotFound = errors.New("objectstore: object not found")

	// ErrInvalidLocation indicates a location string could not be parsed.
	ErrInvalidLocation = errors.New("objectstore: invalid location")

	// ErrNotSupported indicates the operation is not supported.
	ErrNotSupported = errors.New("objectstore: operation not supported")
)

// Error carries the operation and location that failed.
type Error struct {
	Op       string // Operation that failed
	Location string // Location involved in the operation
	Err      error  // Underlying error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("objectstore: %s failed for %s: %v", e.Op, e.Location, e.Err)
	}
	return fmt.Sprintf("objectstore: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new object-store error.
func NewError(op, location string, err error) error {
	return &Error{
		Op:       op,
		Location: location,
		Err:      err,
	}
}
