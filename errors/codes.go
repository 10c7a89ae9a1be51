package errors

import "net/http"

// ErrorCode represents a machine-readable error type reported to clients.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates the caller supplied malformed input.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeUnauthorized indicates the request lacks valid credentials.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeInternal indicates an unexpected failure inside the service.
	ErrCodeInternal ErrorCode = "internal"
)

var codeStatus = map[ErrorCode]int{
	ErrCodeInvalidRequest: http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeInternal:       http.StatusInternalServerError,
}

// StatusForCode returns the HTTP status associated with code, or 500 for
// codes outside the known set.
func StatusForCode(code ErrorCode) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Fixed messages used by the store translator and the internal fallback.
const (
	MsgResourceExists = "resource exists"
	MsgImproperParams = "improperly formatted params"
	MsgServerError    = "server error"
)
