package testutil

import (
	"errors"
	"testing"

	apperrors "costmanager/internal/errors"
)

// AssertAppError checks that err is an *AppError wrapping the expected sentinel.
// Sentinels share codes, so the message is compared as well.
func AssertAppError(t *testing.T, err error, sentinel *apperrors.AppError) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", sentinel.Code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != sentinel.Code || appErr.StatusCode != sentinel.StatusCode {
		t.Errorf("expected error %q (%d), got %q (%d) (message: %s)",
			sentinel.Code, sentinel.StatusCode, appErr.Code, appErr.StatusCode, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
