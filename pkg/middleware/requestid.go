package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mwkit/mwkit/pkg/common"
)

// requestIDKey is the context key for the per-request ID.
type requestIDKey struct{}

// RequestIDHeader is the response header carrying the generated request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID returns a middleware that generates a unique ID for each
// request, attaches it to the request context, and echoes it in the
// X-Request-ID response header. This allows request correlation across
// logs and downstream middleware.
func RequestID() Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		id := uuid.New().String()

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the request context.
// Returns an empty string if no request ID is present.
func GetRequestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetRequestIDFromContext extracts the request ID from a context.
// Returns an empty string if no request ID is present.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
