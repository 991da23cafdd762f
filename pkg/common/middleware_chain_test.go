package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareChainThen(t *testing.T) {
	chain := NewMiddlewareChain()

	chain = chain.Append(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Test-1", "value1")
			next.ServeHTTP(w, r)
		})
	})
	chain = chain.Append(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Test-2", "value2")
			next.ServeHTTP(w, r)
		})
	})

	handler := chain.Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "http://example.com/foo", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	for header, expected := range map[string]string{"X-Test-1": "value1", "X-Test-2": "value2"} {
		if got := w.Header().Get(header); got != expected {
			t.Errorf("Expected %s header to be %q, got %q", header, expected, got)
		}
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body %q, got %q", "OK", w.Body.String())
	}
}

func TestMiddlewareChainPrepend(t *testing.T) {
	var order []string
	chain := NewMiddlewareChain(markerMiddleware("b", &order)).
		Prepend(markerMiddleware("a", &order))

	invoke(t, chain.Then(markerHandler(&order)))

	assertOrder(t, order, []string{"a-before", "b-before", "handler", "b-after", "a-after"})
}

func TestMiddlewareChainAppendCopies(t *testing.T) {
	var order []string
	base := NewMiddlewareChain(markerMiddleware("a", &order), markerMiddleware("b", &order))

	// Two appends onto the same base must not share storage
	c1 := base.Append(markerMiddleware("c", &order))
	c2 := base.Append(markerMiddleware("d", &order))

	order = nil
	invoke(t, c1.Then(markerHandler(&order)))
	assertOrder(t, order, []string{"a-before", "b-before", "c-before", "handler", "c-after", "b-after", "a-after"})

	order = nil
	invoke(t, c2.Then(markerHandler(&order)))
	assertOrder(t, order, []string{"a-before", "b-before", "d-before", "handler", "d-after", "b-after", "a-after"})
}

func TestEmptyMiddlewareChain(t *testing.T) {
	handler := NewMiddlewareChain().Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "http://example.com/foo", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body %q, got %q", "OK", w.Body.String())
	}
}
