package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Fields != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	if simple.Error() != "CLIENT_NOT_FOUND: Client not found" || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}

func TestNewValidationError(t *testing.T) {
	e := NewValidationError(map[string]string{"first_name": "is required"})
	if e.HTTPStatus != http.StatusBadRequest || e.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.ToHTTPError().Fields["first_name"] != "is required" {
		t.Fatalf("expected field message, got %+v", e.ToHTTPError())
	}
}
