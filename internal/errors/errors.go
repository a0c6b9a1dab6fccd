package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a todo error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrStoreUnreadable ErrorCode = "STORE_UNREADABLE" // 500
	ErrPersistFailed   ErrorCode = "PERSIST_FAILED"   // 503
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// TodoError represents a structured error with code, status, and details.
type TodoError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *TodoError) Unwrap() error {
	return e.cause
}

// NewInvalidRequest creates a 400 error for input that fails a precondition.
func NewInvalidRequest(msg string) *TodoError {
	return &TodoError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when no task has the given id.
func NewNotFound(id int) *TodoError {
	return &TodoError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("task not found: %d", id),
		Details: map[string]any{"id": id},
	}
}

// NewPersistFailed creates a 503 error for when the backing file cannot be written.
// The in-memory collection is still valid when this is returned.
func NewPersistFailed(path string, err error) *TodoError {
	msg := fmt.Sprintf("could not write to %s", path)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &TodoError{
		Code:    ErrPersistFailed,
		Status:  503,
		Message: msg,
		Details: map[string]any{"path": path},
		cause:   err,
	}
}

// NewStoreUnreadable creates a 500 error for a backing file that exists but cannot be read.
func NewStoreUnreadable(path string, err error) *TodoError {
	msg := fmt.Sprintf("could not read %s", path)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &TodoError{
		Code:    ErrStoreUnreadable,
		Status:  500,
		Message: msg,
		Details: map[string]any{"path": path},
		cause:   err,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the cause is kept in Details for logging.
func NewInternal(err error) *TodoError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &TodoError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
		cause:   err,
	}
}

// Is checks if an error is (or wraps) a TodoError with the given code.
func Is(err error, code ErrorCode) bool {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// As returns the TodoError in err's chain, if any.
func As(err error) (*TodoError, bool) {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}
