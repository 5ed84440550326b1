package model

import "testing"

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrValidation, Message: "request 201 out of range [0, 200]"}
	want := "VALIDATION_ERROR: request 201 out of range [0, 200]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad input", FieldError{Field: "requests", Message: "out of range"})
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 1 || err.Details[0].Field != "requests" {
		t.Errorf("Details = %+v, want one field error on requests", err.Details)
	}
}
