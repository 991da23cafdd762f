package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHTTPErrorString(t *testing.T) {
	err := NewHTTPError(http.StatusNotFound, "Not Found")
	if err.Error() != "404: Not Found" {
		t.Errorf("Expected %q, got %q", "404: Not Found", err.Error())
	}
}

func TestWriteErrorFallback(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "http://example.com/foo", nil)

	WriteError(w, req, zap.NewNop(), fmt.Errorf("db down"), http.StatusInternalServerError, "Handler error")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Handler error") {
		t.Errorf("Expected fallback message in body, got %q", w.Body.String())
	}
}

func TestWriteErrorWrappedHTTPError(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "http://example.com/foo", nil)

	err := fmt.Errorf("lookup: %w", NewHTTPError(http.StatusNotFound, "No Such User"))
	WriteError(w, req, zap.NewNop(), err, http.StatusInternalServerError, "Handler error")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected wrapped HTTPError status %d, got %d", http.StatusNotFound, w.Code)
	}
	if !strings.Contains(w.Body.String(), "No Such User") {
		t.Errorf("Expected wrapped HTTPError message in body, got %q", w.Body.String())
	}
}
