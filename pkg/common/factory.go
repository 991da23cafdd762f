package common

import (
	"net/http"
)

// From lifts a Callback into a Middleware. The returned middleware wraps a
// handler h in a new handler whose continuation invokes h, so the callback
// runs its pre-handler logic, optionally calls next, and resumes with any
// post-handler logic after next returns.
//
// From performs no validation and installs no error handling of its own:
// a panic raised inside the callback, or inside the handler reached through
// next, propagates unchanged to whatever invoked the composed handler. A
// callback that wants to translate inner failures into a response must
// recover around its own next call (see the middleware package's Recovery
// for the usual outermost guard).
func From(cb Callback) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cb(w, r, next.ServeHTTP)
		})
	}
}
