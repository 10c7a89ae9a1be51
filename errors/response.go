package errors

import "net/http"

// ErrorResponse is the JSON structure returned to clients.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details sent to clients. Message is always a
// list so that multi-field validation failures share the shape of single ones.
type ErrorBody struct {
	Type    ErrorCode      `json:"type"`
	Message []string       `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Type:    e.Code,
			Message: []string{e.Message},
			Details: e.Details,
		},
	}
}

// HTTPResponse maps err to the status code and body an HTTP boundary should
// send. Errors that are not AppErrors map to 500. Server errors never carry a
// body, so the returned body is nil whenever status is 500.
func HTTPResponse(err error) (int, *ErrorResponse) {
	appErr, ok := AsAppError(err)
	if !ok || appErr.HTTPStatus == 0 {
		return http.StatusInternalServerError, nil
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		return appErr.HTTPStatus, nil
	}
	resp := appErr.ToResponse()
	return appErr.HTTPStatus, &resp
}
