package server

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// HTTPError represents an HTTP error with a status code and message.
// Handlers return or construct it to control the exact error response
// sent to clients.
type HTTPError struct {
	StatusCode int    // HTTP status code (e.g., 400, 404, 500)
	Message    string // Error message to be sent in the response body
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the specified status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// WriteError logs err and writes an error response. If err wraps an
// HTTPError, its status code and message take precedence over the
// fallback values.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, statusCode int, message string) {
	logger.Error(message,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode
		message = httpErr.Message
	}

	http.Error(w, message, statusCode)
}
