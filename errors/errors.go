package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error type.
	Code ErrorCode `json:"type"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError whose HTTP status follows from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: StatusForCode(code),
	}
}

// --- Constructors ---

// InvalidArgument reports malformed caller input. The message is returned to
// the client verbatim.
func InvalidArgument(message string) *AppError {
	return New(ErrCodeInvalidRequest, message)
}

// BadRequest is an alias of InvalidArgument kept for handler code that speaks
// in HTTP terms.
func BadRequest(message string) *AppError {
	return New(ErrCodeInvalidRequest, message)
}

// Validation creates a new AppError for struct or field validation failures.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidRequest, message)
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Unauthorized creates a new AppError for unauthorized access.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "authentication required"
	}
	return New(ErrCodeUnauthorized, reason)
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, MsgServerError).WithCause(cause)
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Wrap classifies err: AppErrors anywhere in the chain are returned as-is,
// anything else becomes Internal. Wrap(nil) is nil.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
