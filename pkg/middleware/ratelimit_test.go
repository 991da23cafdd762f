package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitPassesRequests(t *testing.T) {
	handler := RateLimit(1000)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "http://example.com/foo", nil))
		if w.Code != http.StatusOK {
			t.Errorf("Request %d: expected status code %d, got %d", i, http.StatusOK, w.Code)
		}
	}
}

func TestRateLimitPacesRequests(t *testing.T) {
	handler := RateLimit(50)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// At 50 rps, 5 requests past the first must take roughly 100ms in total
	start := time.Now()
	for i := 0; i < 6; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "http://example.com/foo", nil))
	}
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("Expected the limiter to pace requests, 6 requests took %v", elapsed)
	}
}
