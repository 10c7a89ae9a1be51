package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kbukum/objectid/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "user")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "   ")
	if !v2.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("hash", "blake2b", []string{"blake2b", "sha2-256"})
	if v.HasErrors() {
		t.Error("expected no error for valid oneOf value")
	}

	v2 := New()
	v2.OneOf("hash", "md5", []string{"blake2b", "sha2-256"})
	if !v2.HasErrors() {
		t.Error("expected error for value outside the allowed set")
	}

	v3 := New()
	v3.OneOf("hash", "", []string{"blake2b"})
	if v3.HasErrors() {
		t.Error("expected empty value to be skipped")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "tag", "duplicate tag")
	if v.HasErrors() {
		t.Error("expected no error when condition holds")
	}
	v.Custom(false, "tag", "duplicate tag")
	if !v.HasErrors() {
		t.Error("expected error when condition fails")
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	if v.Validate() != nil {
		t.Error("expected nil AppError with no errors")
	}
	if v.Err() != nil {
		t.Error("expected nil error with no errors")
	}

	v.AddError("name", "is required")
	v.AddError("tag", "is required")
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidRequest {
		t.Errorf("expected invalid_request, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name: is required") || !strings.Contains(appErr.Message, "tag: is required") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

func TestValidatorMerge(t *testing.T) {
	inner := New()
	inner.AddError("name", "is required")

	v := New()
	v.Merge("types[0]", inner.Err())
	v.Merge("types[1]", fmt.Errorf("boom"))
	v.Merge("types[2]", nil)

	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Field != "types[0].name" {
		t.Errorf("expected prefixed field, got %q", errs[0].Field)
	}
	if errs[1].Field != "types[1]" || errs[1].Message != "boom" {
		t.Errorf("unexpected plain error entry %+v", errs[1])
	}
}

type definition struct {
	Name string `json:"name" validate:"required,typename,max=32"`
	Tag  uint8  `json:"tag" validate:"required"`
	Hash string `json:"hash" validate:"omitempty,oneof=blake2b sha2-256"`
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(definition{Name: "api_key", Tag: 3}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateTable(t *testing.T) {
	tests := []struct {
		name   string
		in     definition
		field  string
		substr string
	}{
		{"missing name", definition{Tag: 1}, "name", "is required"},
		{"zero tag", definition{Name: "user"}, "tag", "is required"},
		{"uppercase name", definition{Name: "User", Tag: 1}, "name", "lowercase letter"},
		{"leading digit", definition{Name: "1user", Tag: 1}, "name", "lowercase letter"},
		{"too long", definition{Name: strings.Repeat("a", 33), Tag: 1}, "name", "at most 32"},
		{"bad hash", definition{Name: "user", Tag: 1, Hash: "md5"}, "hash", "one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if !strings.Contains(appErr.Message, tc.field+": ") {
				t.Errorf("expected message to mention %q, got %q", tc.field, appErr.Message)
			}
			if !strings.Contains(appErr.Message, tc.substr) {
				t.Errorf("expected message to contain %q, got %q", tc.substr, appErr.Message)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"ObjectType": "object_type",
		"tag":        "tag",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
