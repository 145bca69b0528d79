package pkg

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleItem struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type samplePayload struct {
	Name   string       `json:"name" validate:"required,min=2"`
	Status string       `json:"status" validate:"omitempty,oneof=draft sent"`
	Email  string       `json:"email" validate:"omitempty,email"`
	Items  []sampleItem `json:"items" validate:"min=1,dive"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(JSONTagName)
	return v
}

func TestFieldErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(samplePayload{
		Name:   "a",
		Status: "paid",
		Email:  "nope",
		Items:  []sampleItem{{Quantity: 0}},
	})
	fields := FieldErrors(err)

	expected := map[string]string{
		"name":              "must be at least 2 characters",
		"status":            "must be one of: draft, sent",
		"email":             "must be a valid email address",
		"items[0].quantity": "must be greater than 0",
	}
	for k, msg := range expected {
		if fields[k] != msg {
			t.Fatalf("field %s: expected %q, got %q (all: %+v)", k, msg, fields[k], fields)
		}
	}
}

func TestFieldErrors_RequiredAndEmptySlice(t *testing.T) {
	v := newValidator()

	fields := FieldErrors(v.Struct(samplePayload{}))
	if fields["name"] != "is required" {
		t.Fatalf("expected required message, got %+v", fields)
	}
	if fields["items"] != "must contain at least 1 item(s)" {
		t.Fatalf("expected items message, got %+v", fields)
	}
}

func TestFieldErrors_NotValidation(t *testing.T) {
	if FieldErrors(errors.New("boom")) != nil {
		t.Fatalf("expected nil for non-validation errors")
	}
	if FieldErrors(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
