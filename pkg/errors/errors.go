package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"
	"time"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Caller errors, recoverable by correcting the request
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrorCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrorCodeConflict     ErrorCode = "CONFLICT"
	ErrorCodeInvalidJSON  ErrorCode = "INVALID_JSON"

	// Technical errors
	ErrorCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrorCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
	ErrorCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	Timestamp  time.Time              `json:"timestamp"`
	RequestID  string                 `json:"request_id,omitempty"`
	StackTrace string                 `json:"-"` // Don't expose in JSON
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error wrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ToJSON converts the error to JSON for API responses
func (e *AppError) ToJSON() []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"error":      e.Message,
		"code":       e.Code,
		"details":    e.Details,
		"timestamp":  e.Timestamp,
		"request_id": e.RequestID,
	})
	return data
}

// GetHTTPStatus returns the appropriate HTTP status code for the error
func (e *AppError) GetHTTPStatus() int {
	switch e.Code {
	case ErrorCodeInvalidInput, ErrorCodeInvalidJSON:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeTimeout:
		return http.StatusRequestTimeout
	case ErrorCodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		Timestamp:  time.Now(),
		StackTrace: getStackTrace(),
	}
}

// NewAppErrorWithCause creates a new application error with an underlying cause
func NewAppErrorWithCause(code ErrorCode, message string, cause error) *AppError {
	err := NewAppError(code, message)
	err.Cause = cause
	return err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID adds a request ID to the error
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

func getStackTrace() string {
	buf := make([]byte, 2048)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// Predefined error constructors for common cases

// InvalidInputError creates an error for a request that is missing or
// carries a malformed required field.
func InvalidInputError(message string) *AppError {
	return NewAppError(ErrorCodeInvalidInput, message)
}

// InvalidInputErrorWithDetails creates an invalid input error with field details
func InvalidInputErrorWithDetails(message string, fields map[string]string) *AppError {
	err := NewAppError(ErrorCodeInvalidInput, message)
	for field, msg := range fields {
		err.WithDetail(field, msg)
	}
	return err
}

// NotFoundError creates a not found error
func NotFoundError(resource string) *AppError {
	return NewAppError(ErrorCodeNotFound, fmt.Sprintf("%s not found", resource))
}

// ConflictError creates an error for an invariant violation, such as an
// asset that is already allocated.
func ConflictError(message string) *AppError {
	return NewAppError(ErrorCodeConflict, message)
}

// InternalError creates an internal server error
func InternalError(message string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeInternal, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(operation string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeTimeout, fmt.Sprintf("timeout during %s", operation), cause)
}

// ExternalServiceError creates an external service error
func ExternalServiceError(service string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeExternalService,
		fmt.Sprintf("external service '%s' error", service), cause)
}

// InvalidJSONError creates an invalid JSON error
func InvalidJSONError(cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeInvalidJSON, "Invalid JSON format", cause)
}

// Error handling utilities

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// WrapError wraps a generic error as an internal error. Deadline and
// cancellation errors become timeout errors.
func WrapError(err error, message string) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return TimeoutError(message, err)
	}
	return NewAppErrorWithCause(ErrorCodeInternal, message, err)
}
