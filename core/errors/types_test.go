package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "session",
		ID:       "123",
	}

	expected := "session not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "page",
		Message: "must be at least 1",
	}

	expected := "validation error on field 'page': must be at least 1"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExternalAPIError
		expected string
	}{
		{
			name:     "without code",
			err:      &ExternalAPIError{StatusCode: 500, Message: "Internal Server Error", API: "newsapi"},
			expected: "external API error from newsapi: 500 - Internal Server Error",
		},
		{
			name:     "with newsapi code",
			err:      &ExternalAPIError{StatusCode: 429, Code: "rateLimited", Message: "too many requests", API: "newsapi"},
			expected: "external API error from newsapi: 429 rateLimited - too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	plain := errors.New("plain")

	if !IsNotFound(&NotFoundError{Resource: "session", ID: "x"}) || IsNotFound(plain) {
		t.Error("IsNotFound mismatch")
	}
	if !IsValidation(&ValidationError{Field: "page"}) || IsValidation(plain) {
		t.Error("IsValidation mismatch")
	}
	if !IsExternalAPI(&ExternalAPIError{StatusCode: 500}) || IsExternalAPI(plain) {
		t.Error("IsExternalAPI mismatch")
	}
}

func TestAsExternalAPI_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("regional branch: %w", &ExternalAPIError{StatusCode: 401, Code: "apiKeyInvalid"})

	apiErr, ok := AsExternalAPI(wrapped)
	if !ok {
		t.Fatal("AsExternalAPI should unwrap a wrapped ExternalAPIError")
	}
	if apiErr.Code != "apiKeyInvalid" {
		t.Errorf("Code = %s, want apiKeyInvalid", apiErr.Code)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("decode failed")
	err := WrapError(base, "regional branch")
	if err.Error() != "regional branch: decode failed" {
		t.Errorf("WrapError() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("WrapError should keep the original error in the chain")
	}
}
