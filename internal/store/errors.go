package store

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("todo not found")

// NotFoundError is returned when no todo in the store has the requested id.
// Message is the human-readable text callers show to users.
type NotFoundError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// NotFound builds the error for id as the caller wrote it.
func NotFound(id string) *NotFoundError {
	return &NotFoundError{
		ID:      id,
		Message: fmt.Sprintf("todo with id %s not found", id),
	}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
