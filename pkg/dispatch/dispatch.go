// Package dispatch routes an incoming request to a per-method registered
// handler. It performs no routing by path; path-based routing is the
// concern of the surrounding serving framework (see the server package).
package dispatch

import (
	"net/http"
	"strings"

	"github.com/mwkit/mwkit/pkg/common"
)

// method is the closed set of HTTP methods the dispatcher recognizes.
// Keeping it an enumeration rather than open string keys gives the
// resolution switches exhaustiveness checking.
type method int

const (
	methodGet method = iota
	methodPost
	methodPut
	methodPatch
	methodDelete
	methodCount // number of recognized methods, keep last
)

// parseMethod maps a request method string, uppercase-normalized, onto the
// enumeration. Reports false for methods outside the recognized set.
func parseMethod(s string) (method, bool) {
	switch strings.ToUpper(s) {
	case http.MethodGet:
		return methodGet, true
	case http.MethodPost:
		return methodPost, true
	case http.MethodPut:
		return methodPut, true
	case http.MethodPatch:
		return methodPatch, true
	case http.MethodDelete:
		return methodDelete, true
	}
	return 0, false
}

// String returns the canonical uppercase method name.
func (m method) String() string {
	switch m {
	case methodGet:
		return http.MethodGet
	case methodPost:
		return http.MethodPost
	case methodPut:
		return http.MethodPut
	case methodPatch:
		return http.MethodPatch
	case methodDelete:
		return http.MethodDelete
	}
	return "UNKNOWN"
}

// Config names the middleware applied to handlers as they are registered.
// Each per-method entry covers exactly its method; Default covers any
// method without an entry of its own. All fields are optional.
type Config struct {
	Get     common.Middleware
	Post    common.Middleware
	Put     common.Middleware
	Patch   common.Middleware
	Delete  common.Middleware
	Default common.Middleware
}

// resolve returns the middleware for a method: the method-specific entry
// if present, else Default, else nil.
func (c *Config) resolve(m method) common.Middleware {
	var mw common.Middleware
	switch m {
	case methodGet:
		mw = c.Get
	case methodPost:
		mw = c.Post
	case methodPut:
		mw = c.Put
	case methodPatch:
		mw = c.Patch
	case methodDelete:
		mw = c.Delete
	}
	if mw == nil {
		mw = c.Default
	}
	return mw
}

// Dispatcher binds per-method handlers and serves an incoming request with
// the one matching its method. Handlers are wrapped with the configured
// middleware at registration time, so dispatch is a plain table lookup.
//
// Registration is meant for setup: build the dispatcher once, register
// every handler, then share it freely across concurrent requests. The
// handler table is not synchronized and must not be modified after the
// first request is served.
type Dispatcher struct {
	config   Config
	handlers [methodCount]http.Handler
}

// New creates a Dispatcher. A nil config means no middleware is applied
// at registration.
func New(config *Config) *Dispatcher {
	d := &Dispatcher{}
	if config != nil {
		d.config = *config
	}
	return d
}

// register wraps h with the middleware resolved for m and stores it.
// Registering the same method again replaces the previous handler.
func (d *Dispatcher) register(m method, h http.Handler) *Dispatcher {
	if mw := d.config.resolve(m); mw != nil {
		h = mw(h)
	}
	d.handlers[m] = h
	return d
}

// Get registers the handler for GET requests and returns the dispatcher
// for chaining.
func (d *Dispatcher) Get(h http.Handler) *Dispatcher { return d.register(methodGet, h) }

// Post registers the handler for POST requests and returns the dispatcher
// for chaining.
func (d *Dispatcher) Post(h http.Handler) *Dispatcher { return d.register(methodPost, h) }

// Put registers the handler for PUT requests and returns the dispatcher
// for chaining.
func (d *Dispatcher) Put(h http.Handler) *Dispatcher { return d.register(methodPut, h) }

// Patch registers the handler for PATCH requests and returns the dispatcher
// for chaining.
func (d *Dispatcher) Patch(h http.Handler) *Dispatcher { return d.register(methodPatch, h) }

// Delete registers the handler for DELETE requests and returns the
// dispatcher for chaining.
func (d *Dispatcher) Delete(h http.Handler) *Dispatcher { return d.register(methodDelete, h) }

// GetFunc registers a handler function for GET requests.
func (d *Dispatcher) GetFunc(h http.HandlerFunc) *Dispatcher { return d.Get(h) }

// PostFunc registers a handler function for POST requests.
func (d *Dispatcher) PostFunc(h http.HandlerFunc) *Dispatcher { return d.Post(h) }

// PutFunc registers a handler function for PUT requests.
func (d *Dispatcher) PutFunc(h http.HandlerFunc) *Dispatcher { return d.Put(h) }

// PatchFunc registers a handler function for PATCH requests.
func (d *Dispatcher) PatchFunc(h http.HandlerFunc) *Dispatcher { return d.Patch(h) }

// DeleteFunc registers a handler function for DELETE requests.
func (d *Dispatcher) DeleteFunc(h http.HandlerFunc) *Dispatcher { return d.Delete(h) }

// allowed lists the registered methods in canonical form, for the Allow
// header of 405 responses.
func (d *Dispatcher) allowed() string {
	var methods []string
	for m := method(0); m < methodCount; m++ {
		if d.handlers[m] != nil {
			methods = append(methods, m.String())
		}
	}
	return strings.Join(methods, ", ")
}

// ServeHTTP implements http.Handler. A request without a method is
// answered with 500, a request whose method has no registered handler
// with 405; otherwise the stored, already-wrapped handler is invoked with
// the original request and writer. Failures inside that handler are never
// intercepted here.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == "" {
		http.Error(w, "Missing Request Method", http.StatusInternalServerError)
		return
	}

	m, ok := parseMethod(r.Method)
	if !ok || d.handlers[m] == nil {
		if allow := d.allowed(); allow != "" {
			w.Header().Set("Allow", allow)
		}
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	d.handlers[m].ServeHTTP(w, r)
}
