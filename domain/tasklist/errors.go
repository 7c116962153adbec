package tasklist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every "referenced id does not resolve" error.
	ErrNotFound = errors.New("not found")
	// ErrTaskListNotFound is returned when a task list id does not resolve.
	ErrTaskListNotFound = fmt.Errorf("task list %w", ErrNotFound)
	// ErrTaskNotFound is returned when a task id does not resolve.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	// ErrAccessDenied is returned when the entity belongs to another user.
	ErrAccessDenied = errors.New("access denied")
	// ErrDataIntegrity marks a broken internal invariant, such as a task whose
	// list is gone. It is a bug signal, not a user error.
	ErrDataIntegrity = errors.New("data integrity violation")
	// ErrStorage is matched by every *StorageError.
	ErrStorage = errors.New("storage failure")
)

// StorageError reports a failed store operation along with the driver error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
