package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != "internal_error" || err.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected wrapped error: %+v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to its cause")
	}
	if err.Error() != ErrInternalServer.Message {
		t.Errorf("expected public message, got %q", err.Error())
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrValidation, "month must be 1..12")

	if err.Message != "month must be 1..12" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Code != ErrValidation.Code || err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected validation code and 400, got %q %d", err.Code, err.StatusCode)
	}
	if ErrValidation.Message != "Invalid input" {
		t.Error("sentinel must not be mutated")
	}
}
