package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a promptstash error code.
type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // 400
	ErrNotFound          ErrorCode = "NOT_FOUND"          // 404
	ErrImportFailed      ErrorCode = "IMPORT_FAILED"      // 422
	ErrNoAPIKey          ErrorCode = "NO_API_KEY"         // 401
	ErrInvalidAPIKey     ErrorCode = "INVALID_API_KEY"    // 401
	ErrUpstream          ErrorCode = "UPSTREAM_ERROR"     // 502
	ErrMalformedResponse ErrorCode = "MALFORMED_RESPONSE" // 502
	ErrInternal          ErrorCode = "INTERNAL"           // 500
)

// StashError represents a structured error with code, status, and details.
type StashError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *StashError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *StashError {
	return &StashError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for an unresolvable entity reference.
func NewNotFound(kind, id string) *StashError {
	return &StashError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewImportFailed creates a 422 error for a rejected library import.
// Import failures never leave partial state behind.
func NewImportFailed(err error) *StashError {
	return &StashError{
		Code:    ErrImportFailed,
		Status:  422,
		Message: fmt.Sprintf("import rejected, store left unchanged: %v", err),
	}
}

// NewNoAPIKey creates a 401 error for a missing Anthropic API key.
func NewNoAPIKey() *StashError {
	return &StashError{
		Code:    ErrNoAPIKey,
		Status:  401,
		Message: "no API key configured; set ANTHROPIC_API_KEY or add api_key to config.json",
	}
}

// NewInvalidAPIKey creates a 401 error for a rejected API key.
func NewInvalidAPIKey() *StashError {
	return &StashError{
		Code:    ErrInvalidAPIKey,
		Status:  401,
		Message: "the configured API key was rejected by the API",
	}
}

// NewUpstream creates a 502 error for a failed optimization call.
func NewUpstream(status int, msg string) *StashError {
	return &StashError{
		Code:    ErrUpstream,
		Status:  502,
		Message: msg,
		Details: map[string]any{"upstream_status": status},
	}
}

// NewMalformedResponse creates a 502 error for an unusable API response.
func NewMalformedResponse(msg string) *StashError {
	return &StashError{
		Code:    ErrMalformedResponse,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *StashError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StashError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a StashError with the given code, unwrapping
// as needed.
func Is(err error, code ErrorCode) bool {
	var sErr *StashError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
