package common

import (
	"net/http"
)

// MiddlewareChain is an ordered sequence of middleware. The first element
// is the outermost layer: it sees the request first and the response last.
type MiddlewareChain []Middleware

// NewMiddlewareChain creates a new middleware chain from the given
// middleware, outermost first.
func NewMiddlewareChain(middlewares ...Middleware) MiddlewareChain {
	return middlewares
}

// Append returns a new chain with the given middleware added at the inner
// end. The receiver is never modified, so a chain can be shared as a base
// and extended independently by multiple callers.
func (c MiddlewareChain) Append(middlewares ...Middleware) MiddlewareChain {
	result := make(MiddlewareChain, len(c)+len(middlewares))
	copy(result, c)
	copy(result[len(c):], middlewares)
	return result
}

// Prepend returns a new chain with the given middleware added at the outer
// end. The receiver is never modified.
func (c MiddlewareChain) Prepend(middlewares ...Middleware) MiddlewareChain {
	result := make(MiddlewareChain, len(middlewares)+len(c))
	copy(result, middlewares)
	copy(result[len(middlewares):], c)
	return result
}

// Then applies the chain to a terminal handler, producing a handler in
// which c[0] is outermost: Then(h) == c[0](c[1](...c[n-1](h)...)).
func (c MiddlewareChain) Then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i](h)
	}
	return h
}
