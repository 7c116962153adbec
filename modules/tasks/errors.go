package tasks

import (
	"errors"
	"fmt"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
)

// ErrInvalidRequest is returned for malformed ids or missing fields.
var ErrInvalidRequest = errors.New("invalid request")

func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// toErrorInfo classifies err for a service response.
func toErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	info := &ErrorInfo{Message: err.Error()}
	switch {
	// Checked first: a data integrity error also matches ErrNotFound.
	case errors.Is(err, tasklist.ErrDataIntegrity):
		info.Code = CodeDataIntegrity
	case errors.Is(err, tasklist.ErrTaskListNotFound):
		info.Code = CodeNotFound
		info.Entity = EntityTaskList
	case errors.Is(err, tasklist.ErrTaskNotFound):
		info.Code = CodeNotFound
		info.Entity = EntityTask
	case errors.Is(err, tasklist.ErrAccessDenied):
		info.Code = CodeAccessDenied
	case errors.Is(err, ErrInvalidRequest):
		info.Code = CodeInvalidRequest
	default:
		info.Code = CodeStorageFailure
	}
	return info
}

// Err turns an ErrorInfo back into an error that matches the same sentinels
// the service returned.
func (e *ErrorInfo) Err() error {
	if e == nil {
		return nil
	}

	switch e.Code {
	case CodeNotFound:
		if e.Entity == EntityTask {
			return tasklist.ErrTaskNotFound
		}
		return tasklist.ErrTaskListNotFound
	case CodeAccessDenied:
		return tasklist.ErrAccessDenied
	case CodeDataIntegrity:
		return fmt.Errorf("%w: %w (%s)", tasklist.ErrDataIntegrity, tasklist.ErrTaskListNotFound, e.Message)
	case CodeInvalidRequest:
		return fmt.Errorf("%w (%s)", ErrInvalidRequest, e.Message)
	default:
		return &tasklist.StorageError{Op: "tasks", Err: errors.New(e.Message)}
	}
}
