package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Result is the outcome of a single extraction. Exactly one of Text or
// Error is meaningful, selected by Success. Err keeps the original error
// for callers that branch on its type; it is never serialized.
type Result struct {
	Success bool
	Text    string
	Error   string
	Err     error
}

// Succeeded builds a success result carrying the extracted text
func Succeeded(text string) Result {
	return Result{Success: true, Text: text}
}

// describer is implemented by errors that carry a caller-facing text
// distinct from Error()
type describer interface {
	Description() string
}

// Failed builds a failure result from err's description
func Failed(err error) Result {
	msg := "unknown error"
	var d describer
	switch {
	case errors.As(err, &d) && d.Description() != "":
		msg = d.Description()
	case err != nil && err.Error() != "":
		msg = err.Error()
	}
	return Result{Success: false, Error: msg, Err: err}
}

type successPayload struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type failurePayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON emits "text" on success and "error" on failure. An empty
// text is still written so callers can tell an empty document apart
// from a missing field.
func (r Result) MarshalJSON() ([]byte, error) {
	var payload interface{} = failurePayload{Success: false, Error: r.Error}
	if r.Success {
		payload = successPayload{Success: true, Text: r.Text}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON accepts either variant
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result{Success: raw.Success, Text: raw.Text, Error: raw.Error}
	return nil
}
