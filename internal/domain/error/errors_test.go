package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidCredentials.Error() != "invalid credentials" {
		t.Errorf("ErrInvalidCredentials has unexpected message: %s", ErrInvalidCredentials.Error())
	}
	if ErrDuplicateRegistration.Error() != "account already registered" {
		t.Errorf("ErrDuplicateRegistration has unexpected message: %s", ErrDuplicateRegistration.Error())
	}
	if ErrPredictionNotFound.Error() != "prediction not found" {
		t.Errorf("ErrPredictionNotFound has unexpected message: %s", ErrPredictionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"DuplicateRegistration", ErrDuplicateRegistration, 4001},
		{"InvalidUpload", ErrInvalidUpload, 4002},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"Unauthenticated", ErrUnauthenticated, 4011},
		{"PredictionNotFound", ErrPredictionNotFound, 4041},
		{"MissingField", &MissingFieldError{Field: "confidence"}, 5020},
		{"ExternalCall", NewExternalCallError("gemini", errors.New("quota")), 5021},
		{"Persistence", fmt.Errorf("%w: boom", ErrPersistenceFailure), 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnauthenticated), 4011},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestMalformedResponseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &MalformedResponseError{Raw: "{", Err: cause}

	if !errors.Is(err, ErrMalformedExternalResponse) {
		t.Errorf("errors.Is(err, ErrMalformedExternalResponse) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), "Raw output: {") {
		t.Errorf("MalformedResponseError.Error() = %s, want raw text", err.Error())
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "name_ar", Raw: `{"currency_code":"USD"}`}

	expected := `classifier response missing key 'name_ar'. Raw output: {"currency_code":"USD"}`
	if err.Error() != expected {
		t.Errorf("MissingFieldError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsMalformedResponseError(err) {
		t.Errorf("IsMalformedResponseError(err) = false, want true")
	}
	if err.LogFields()["field"] != "name_ar" {
		t.Errorf("LogFields()[field] = %v, want name_ar", err.LogFields()["field"])
	}
}

func TestTypeMismatchError(t *testing.T) {
	cause := errors.New("not a number")
	err := &TypeMismatchError{Field: "confidence", Parsed: map[string]any{"confidence": "high"}, Err: cause}

	if !errors.Is(err, ErrMalformedExternalResponse) {
		t.Errorf("errors.Is(err, ErrMalformedExternalResponse) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var fielder LogFielder
	if !errors.As(err, &fielder) {
		t.Fatal("TypeMismatchError should implement LogFielder")
	}
	if fielder.LogFields()["error_type"] != "type_mismatch" {
		t.Errorf("unexpected error_type: %v", fielder.LogFields()["error_type"])
	}
}

func TestExternalCallError(t *testing.T) {
	cause := errors.New("429 quota exceeded")
	err := NewExternalCallError("gemini", cause)

	if !IsExternalCallError(err) {
		t.Errorf("IsExternalCallError(err) = false, want true")
	}
	if IsMalformedResponseError(err) {
		t.Errorf("IsMalformedResponseError(err) = true, want false")
	}
	if err.Error() != "gemini classification call failed: 429 quota exceeded" {
		t.Errorf("ExternalCallError.Error() = %s", err.Error())
	}
}

func TestHelpers(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrPredictionNotFound)) {
		t.Errorf("IsNotFoundError should match wrapped ErrPredictionNotFound")
	}
	if IsNotFoundError(ErrInvalidCredentials) {
		t.Errorf("IsNotFoundError should not match ErrInvalidCredentials")
	}
	if !IsAuthError(ErrInvalidCredentials) || !IsAuthError(ErrUnauthenticated) {
		t.Errorf("IsAuthError should match both auth errors")
	}
	if IsAuthError(ErrDuplicateRegistration) {
		t.Errorf("IsAuthError should not match ErrDuplicateRegistration")
	}
}
