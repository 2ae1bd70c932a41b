package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-text-extractor/internal/domain"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteError_EscapesQuotes(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, `bad "input"`)

	if strings.TrimSpace(rr.Body.String()) != `{"error":"bad \"input\""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteResult(t *testing.T) {
	rr := httptest.NewRecorder()
	writeResult(rr, http.StatusOK, domain.Succeeded(""))
	if strings.TrimSpace(rr.Body.String()) != `{"success":true,"text":""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	writeResult(rr, http.StatusUnprocessableEntity, domain.Failed(errors.New("<bad> & worse")))
	if strings.TrimSpace(rr.Body.String()) != `{"success":false,"error":"<bad> & worse"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
