package middleware

import (
	"net/http"

	"github.com/mwkit/mwkit/pkg/common"
	"go.uber.org/ratelimit"
)

// RateLimit returns a middleware that paces requests through a shared
// leaky bucket at the given requests per second, using Uber's ratelimit
// library. Requests are never rejected; a request arriving above the rate
// blocks until its slot comes up, smoothing bursts into a steady stream.
// All requests passing through the returned middleware share one bucket.
func RateLimit(rps int) Middleware {
	limiter := ratelimit.New(rps)
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		limiter.Take()
		next(w, r)
	})
}
