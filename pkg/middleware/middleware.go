package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/mwkit/mwkit/pkg/common"
	"go.uber.org/zap"
)

// Middleware is the common.Middleware type, re-exported for convenience.
type Middleware = common.Middleware

// Recovery returns a middleware that recovers from panics raised anywhere
// below it, logs them, and answers with a 500 Internal Server Error.
// The composition engine itself never intercepts failures, so Recovery is
// normally placed as the outermost layer.
func Recovery(logger *zap.Logger) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered",
					zap.Any("panic", rec),
					zap.String("stack", string(debug.Stack())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next(w, r)
	})
}

// Logging returns a middleware that logs requests with method, path,
// status, and duration. Server errors log at Error level, client errors
// and slow requests at Warn, everything else at Debug to avoid log spam.
func Logging(logger *zap.Logger) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()

		// Capture the status code written by the inner chain
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.statusCode),
			zap.Duration("duration", duration),
		}

		switch {
		case rw.statusCode >= 500:
			logger.Error("Server error", fields...)
		case rw.statusCode >= 400:
			logger.Warn("Client error", fields...)
		case duration > 1*time.Second:
			logger.Warn("Slow request", fields...)
		default:
			logger.Debug("Request", fields...)
		}
	})
}

// MaxBodySize returns a middleware that limits the size of the request
// body. Reads past the limit fail and cause the connection to be closed.
func MaxBodySize(maxSize int64) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next(w, r)
	})
}

// Timeout returns a middleware that bounds how long the inner chain may
// take. The inner chain runs on its own goroutine behind a mutex-guarded
// writer; if the deadline passes first, a 408 Request Timeout is written
// and the response writer is fenced off from late writes.
func Timeout(timeout time.Duration) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		r = r.WithContext(ctx)

		var wMutex sync.Mutex
		wrappedW := &mutexResponseWriter{ResponseWriter: w, mu: &wMutex}

		done := make(chan struct{})
		go func() {
			next(wrappedW, r)
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			wMutex.Lock()
			http.Error(w, "Request Timeout", http.StatusRequestTimeout)
			wMutex.Unlock()
		}
	})
}

// CORS returns a middleware that adds CORS headers to the response and
// answers preflight OPTIONS requests directly.
func CORS(origins []string, methods []string, headers []string) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		if len(origins) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", strings.Join(origins, ", "))
		}
		if len(methods) > 0 {
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		}
		if len(headers) > 0 {
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(headers, ", "))
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	})
}
