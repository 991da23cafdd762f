package common

import (
	"net/http"
)

// Merge composes two middleware into one. For any handler h,
// Merge(a, b)(h) behaves exactly as a(b(h)): a is the outer layer, so a's
// continuation triggers b, and b's continuation triggers h. Merging the
// same two middleware always yields equivalent behavior; failures inside
// either layer propagate to whatever invoked the composed handler.
func Merge(a, b Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		return a(b(h))
	}
}

// Stack is an immutable composite middleware in which each added middleware
// becomes the new innermost layer. NewStack(a).Add(b).Add(c) applied to a
// handler h behaves as a(b(c(h))): pre-handler logic runs first-added to
// last-added, and post-continuation logic unwinds in the reverse order.
type Stack struct {
	chain MiddlewareChain
}

// NewStack creates a stack composite wrapping a single middleware.
func NewStack(m Middleware) Stack {
	return Stack{chain: NewMiddlewareChain(m)}
}

// Add returns a new stack with m as the innermost layer. The receiver is
// unchanged, so a shared base stack can be extended into independent
// variants without interference.
func (s Stack) Add(m Middleware) Stack {
	return Stack{chain: s.chain.Append(m)}
}

// Kind reports KindStack.
func (s Stack) Kind() Kind { return KindStack }

// Middleware returns the composite as a plain Middleware.
func (s Stack) Middleware() Middleware {
	return s.chain.Then
}

// Then applies the composite to a terminal handler.
func (s Stack) Then(h http.Handler) http.Handler {
	return s.chain.Then(h)
}

// Chain is an immutable composite middleware in which each added middleware
// becomes the new outermost layer: NewChain(a).Add(b) applied to a handler
// h behaves as b(a(h)), the mirror of Stack for the same Add sequence.
// It offers "append executes first" semantics without changing the Add
// call shape.
type Chain struct {
	chain MiddlewareChain
}

// NewChain creates a chain composite wrapping a single middleware.
func NewChain(m Middleware) Chain {
	return Chain{chain: NewMiddlewareChain(m)}
}

// Add returns a new chain with m as the outermost layer. The receiver is
// unchanged.
func (c Chain) Add(m Middleware) Chain {
	return Chain{chain: c.chain.Prepend(m)}
}

// Kind reports KindChain.
func (c Chain) Kind() Kind { return KindChain }

// Middleware returns the composite as a plain Middleware.
func (c Chain) Middleware() Middleware {
	return c.chain.Then
}

// Then applies the composite to a terminal handler.
func (c Chain) Then(h http.Handler) http.Handler {
	return c.chain.Then(h)
}
