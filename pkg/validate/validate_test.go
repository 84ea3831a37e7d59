package validate

import (
	"testing"

	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestStructPassesValidPayload(t *testing.T) {
	err := Struct(samplePayload{Email: "a@b.kz", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(samplePayload{Email: "not-an-email"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected typed validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}
