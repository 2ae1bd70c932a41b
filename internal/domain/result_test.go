package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

type describedError struct{}

func (describedError) Error() string       { return "parse: failed to open PDF" }
func (describedError) Description() string { return "not a PDF file: invalid header" }

func TestResult_MarshalSuccess(t *testing.T) {
	data, err := json.Marshal(Succeeded("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"success":true,"text":"Hello"}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestResult_MarshalEmptyTextKept(t *testing.T) {
	data, err := json.Marshal(Succeeded(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"success":true,"text":""}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestResult_MarshalFailureOmitsText(t *testing.T) {
	data, err := json.Marshal(Failed(errors.New("illegal base64 data at input byte 3")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"success":false,"error":"illegal base64 data at input byte 3"}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestFailed_PrefersDescription(t *testing.T) {
	wrapped := fmt.Errorf("open: %w", describedError{})

	result := Failed(wrapped)
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "not a PDF file: invalid header" {
		t.Fatalf("expected description, got %s", result.Error)
	}
	if !errors.Is(result.Err, wrapped) {
		t.Fatalf("expected original error to be kept")
	}
}

func TestFailed_NilError(t *testing.T) {
	if got := Failed(nil).Error; got != "unknown error" {
		t.Fatalf("expected fallback message, got %s", got)
	}
}

func TestResult_UnmarshalRoundTrip(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"success":false,"error":"boom"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Success || r.Error != "boom" || r.Text != "" {
		t.Fatalf("unexpected result: %+v", r)
	}
}
