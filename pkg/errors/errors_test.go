package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		fallback  string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, fallback: "validation failed", detailsOK: true},
		{code: CodeUnauthorized, fallback: "authentication required"},
		{code: CodeForbidden, fallback: "access denied"},
		{code: CodeNotFound, fallback: "resource not found"},
		{code: CodeConflict, fallback: "conflict detected"},
		{code: CodeNetwork, fallback: "network error, please try again", retryable: true},
		{code: CodeServer, fallback: "server error", retryable: true, detailsOK: true},
		{code: CodeInternal, fallback: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.FallbackMsg != tt.fallback {
			t.Fatalf("code %s expected fallback %q got %q", tt.code, tt.fallback, meta.FallbackMsg)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.FallbackMsg != "internal error" {
		t.Fatalf("expected internal fallback, got %q", meta.FallbackMsg)
	}
}

func TestFromHTTPStatus(t *testing.T) {
	cases := map[int]Code{
		http.StatusBadRequest:            CodeValidation,
		http.StatusUnprocessableEntity:   CodeValidation,
		http.StatusUnauthorized:          CodeUnauthorized,
		http.StatusForbidden:             CodeForbidden,
		http.StatusNotFound:              CodeNotFound,
		http.StatusConflict:              CodeConflict,
		http.StatusInternalServerError:   CodeServer,
		http.StatusServiceUnavailable:    CodeServer,
		http.StatusMethodNotAllowed:      CodeInternal,
		http.StatusRequestEntityTooLarge: CodeInternal,
	}
	for status, want := range cases {
		if got := FromHTTPStatus(status); got != want {
			t.Fatalf("status %d expected %s got %s", status, want, got)
		}
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	base.WithDetails(map[string]any{"field": "foo"})
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestUserMessageFallsBack(t *testing.T) {
	if got := New(CodeNetwork, "").UserMessage(); got != "network error, please try again" {
		t.Fatalf("expected fallback message, got %q", got)
	}
	if got := New(CodeValidation, "Name is required").UserMessage(); got != "Name is required" {
		t.Fatalf("expected verbatim message, got %q", got)
	}
}

func TestAsAndIsCode(t *testing.T) {
	err := New(CodeForbidden, "no entry")
	if got := As(err); got == nil || got.Code() != CodeForbidden {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should be nil")
	}
	if !IsCode(err, CodeForbidden) {
		t.Fatalf("IsCode should match")
	}
	if IsCode(stdErrors.New("plain"), CodeForbidden) {
		t.Fatalf("IsCode should reject untyped errors")
	}
}
