// Package common provides the middleware composition engine shared by the
// rest of the mwkit framework: the base Middleware and Callback contracts,
// the factory that lifts a callback into a middleware, and the combinators
// that merge middleware into ordered compositions.
package common

import (
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
// It allows for pre-processing and post-processing of HTTP requests.
// Middleware can be combined with Merge, Stack, or Chain to create a
// pipeline of request processing.
type Middleware func(http.Handler) http.Handler

// Callback is the user-authored unit of middleware logic. It receives the
// response writer, the request, and a continuation that invokes the wrapped
// handler. The callback decides whether and when the continuation runs:
// calling next zero times short-circuits the chain, calling it once is the
// normal pass-through, and calling it more than once re-invokes the wrapped
// handler. The engine does not guard against repeated invocation; avoiding
// double response writes is the callback author's responsibility.
//
// Data intended for downstream middleware and the terminal handler travels
// on the request: attach it with context.WithValue and pass the derived
// request to next. Readers must treat every such value as possibly absent.
type Callback func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc)

// Kind identifies the composition discipline of a composite middleware.
// It exists for introspection and debugging only; the composition
// semantics are carried by the composite type itself.
type Kind string

const (
	// KindStack marks a composite where each added middleware becomes the
	// new innermost layer (append executes last before the handler).
	KindStack Kind = "stack"

	// KindChain marks a composite where each added middleware becomes the
	// new outermost layer (append executes first).
	KindChain Kind = "chain"
)

// String returns the kind tag as a string.
func (k Kind) String() string { return string(k) }
