package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_StatusFromCode(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
}

func TestAppError_New_UnknownCode(t *testing.T) {
	err := New(ErrorCode("teapot"), "short and stout")
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500 for unknown code, got %d", err.HTTPStatus)
	}
}

func TestAppError_InvalidArgument_Success(t *testing.T) {
	err := InvalidArgument("unknown object type")
	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected invalid_request, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Message != "unknown object type" {
		t.Errorf("expected message to be kept verbatim, got %q", err.Message)
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("entropy exhausted")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected internal, got %s", err.Code)
	}
	if err.Message != MsgServerError {
		t.Errorf("expected %q, got %q", MsgServerError, err.Message)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_Unauthorized_DefaultMessage(t *testing.T) {
	err := Unauthorized("")
	if err.Message != "authentication required" {
		t.Errorf("expected default message, got %q", err.Message)
	}

	err2 := Unauthorized("bad token")
	if err2.Message != "bad token" {
		t.Errorf("expected custom message, got %q", err2.Message)
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
	}{
		{"InvalidArgument", InvalidArgument("x"), ErrCodeInvalidRequest, http.StatusBadRequest},
		{"BadRequest", BadRequest("x"), ErrCodeInvalidRequest, http.StatusBadRequest},
		{"Validation", Validation("x"), ErrCodeInvalidRequest, http.StatusBadRequest},
		{"NotFound", NotFound("x"), ErrCodeNotFound, http.StatusNotFound},
		{"Unauthorized", Unauthorized("x"), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
		})
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NotFound("item").WithCause(cause)
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := InvalidArgument("bad").WithDetails(map[string]any{"field": "payload"})
	err.WithDetails(map[string]any{"length": 3})
	if err.Details["field"] != "payload" {
		t.Error("expected field=payload to be preserved after second merge")
	}
	if err.Details["length"] != 3 {
		t.Errorf("expected length=3, got %v", err.Details["length"])
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	s := InvalidArgument("unknown object id").Error()
	if s != "invalid_request: unknown object id" {
		t.Errorf("unexpected error string %q", s)
	}
}

func TestIs_MatchesWrappedCode(t *testing.T) {
	wrapped := fmt.Errorf("minting: %w", InvalidArgument("unknown object type"))
	if !Is(wrapped, ErrCodeInvalidRequest) {
		t.Error("expected Is to match wrapped invalid_request")
	}
	if Is(wrapped, ErrCodeInternal) {
		t.Error("expected Is not to match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("expected Is to be false for plain errors")
	}
}

func TestAsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected internal, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestWrap_Table(t *testing.T) {
	orig := NotFound("item")
	plain := fmt.Errorf("something broke")

	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
	if got := Wrap(fmt.Errorf("outer: %w", orig)); got != orig {
		t.Error("Wrap should unwrap to the original AppError")
	}
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected internal, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestHTTPResponse_ClientError(t *testing.T) {
	status, body := HTTPResponse(InvalidArgument("identifier must be 18 bytes"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body == nil {
		t.Fatal("expected a body for client errors")
	}
	if body.Error.Type != ErrCodeInvalidRequest {
		t.Errorf("expected type invalid_request, got %s", body.Error.Type)
	}
	if len(body.Error.Message) != 1 || body.Error.Message[0] != "identifier must be 18 bytes" {
		t.Errorf("unexpected message list %v", body.Error.Message)
	}
}

func TestHTTPResponse_ServerErrorsHaveNoBody(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"internal", Internal(fmt.Errorf("boom"))},
		{"plain", fmt.Errorf("boom")},
		{"zero status", &AppError{Code: ErrCodeNotFound}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := HTTPResponse(tc.err)
			if status != http.StatusInternalServerError {
				t.Errorf("expected 500, got %d", status)
			}
			if body != nil {
				t.Errorf("expected nil body, got %+v", body)
			}
		})
	}
}

func TestHTTPResponse_WrappedNotFound(t *testing.T) {
	status, body := HTTPResponse(fmt.Errorf("lookup: %w", NotFound("no such credential")))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body.Error.Type != ErrCodeNotFound {
		t.Errorf("expected not_found, got %s", body.Error.Type)
	}
}

type fakePgError struct{ code string }

func (e *fakePgError) Error() string    { return "pg error " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func TestFromStore_Table(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    ErrorCode
		message string
	}{
		{"unique violation", &fakePgError{"23505"}, ErrCodeInvalidRequest, MsgResourceExists},
		{"bad text representation", &fakePgError{"22P02"}, ErrCodeInvalidRequest, MsgImproperParams},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &fakePgError{"23505"}), ErrCodeInvalidRequest, MsgResourceExists},
		{"other sqlstate", &fakePgError{"57014"}, ErrCodeInternal, MsgServerError},
		{"untyped", fmt.Errorf("connection reset"), ErrCodeInternal, MsgServerError},
		{"nil", nil, ErrCodeInternal, MsgServerError},
		{"already classified", NotFound("gone"), ErrCodeNotFound, "gone"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromStore(tc.err)
			if got.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, got.Code)
			}
			if got.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, got.Message)
			}
		})
	}
}

func TestFromStore_KeepsOriginal(t *testing.T) {
	pgErr := &fakePgError{"23505"}
	got := FromStore(pgErr)
	if !stderrors.Is(got, pgErr) {
		t.Error("expected the driver error to be kept as cause")
	}
}
