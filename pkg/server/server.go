package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mwkit/mwkit/pkg/common"
	"github.com/mwkit/mwkit/pkg/dispatch"
	"github.com/mwkit/mwkit/pkg/middleware"
	"go.uber.org/zap"
)

// Server mounts handlers onto paths and serves them over HTTP. Every
// mounted handler runs inside the server-wide middleware chain, which is
// assembled once from the configuration: Recovery outermost, then request
// IDs, logging, metrics, rate limiting, body size limits, request
// timeouts, and authentication, each only when configured. Additional
// middleware passed to New slots in after the built-in chain.
type Server struct {
	config     *Config
	router     *httprouter.Router
	logger     *zap.Logger
	chain      common.MiddlewareChain
	srv        *http.Server
	wg         sync.WaitGroup
	shutdown   bool
	shutdownMu sync.RWMutex
}

// New creates a Server from the given configuration. A nil config uses
// DefaultConfig; a nil logger falls back to a production zap logger, or a
// no-op logger if that cannot be constructed. Extra middleware are applied
// to every mounted handler, inside the configured built-ins.
func New(config *Config, logger *zap.Logger, extra ...common.Middleware) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			logger = zap.NewNop()
		}
	}

	s := &Server{
		config: config,
		router: httprouter.New(),
		logger: logger,
	}

	chain := common.NewMiddlewareChain(middleware.Recovery(logger))
	if config.EnableRequestID {
		chain = chain.Append(middleware.RequestID())
	}
	chain = chain.Append(middleware.Logging(logger))
	if config.EnableMetrics {
		chain = chain.Append(middleware.Metrics())
	}
	if config.RateLimitRPS > 0 {
		chain = chain.Append(middleware.RateLimit(config.RateLimitRPS))
	}
	if config.MaxBodySize > 0 {
		chain = chain.Append(middleware.MaxBodySize(config.MaxBodySize))
	}
	if config.RequestTimeout > 0 {
		chain = chain.Append(middleware.Timeout(time.Duration(config.RequestTimeout) * time.Second))
	}
	if config.Auth.JWTSecret != "" {
		chain = chain.Append(middleware.Auth([]byte(config.Auth.JWTSecret), logger))
	}
	s.chain = chain.Append(extra...)

	if config.EnableMetrics {
		s.router.Handler(http.MethodGet, "/metrics", middleware.MetricsHandler())
	}

	return s
}

// Mount registers a handler for all dispatchable methods at the given
// path, wrapped in the server-wide chain. The handler is expected to do
// its own method discrimination; mounting a dispatch.Dispatcher gives
// per-method handlers with correct 405 behavior.
func (s *Server) Mount(path string, h http.Handler) *Server {
	wrapped := s.wrap(h)
	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	} {
		s.router.Handler(method, path, wrapped)
	}
	return s
}

// MountDispatcher is shorthand for Mount with a dispatcher.
func (s *Server) MountDispatcher(path string, d *dispatch.Dispatcher) *Server {
	return s.Mount(path, d)
}

// wrap applies the server chain around h and adds in-flight request
// tracking so Shutdown can wait for active requests to drain.
func (s *Server) wrap(h http.Handler) http.Handler {
	tracked := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add to the wait group before checking shutdown status so a
		// concurrent Shutdown cannot miss this request
		s.wg.Add(1)
		defer s.wg.Done()

		s.shutdownMu.RLock()
		isShutdown := s.shutdown
		s.shutdownMu.RUnlock()

		if isShutdown {
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}

		h.ServeHTTP(w, r)
	})

	return s.chain.Then(tracked)
}

// ServeHTTP implements http.Handler by delegating to the underlying
// router, so a Server can be driven directly in tests or mounted inside
// another mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP listener with the configured address and
// timeouts. It blocks until the listener stops; http.ErrServerClosed is
// returned after a graceful Shutdown.
func (s *Server) ListenAndServe() error {
	s.srv = &http.Server{
		Addr:         s.config.Listen.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.readTimeout(),
		WriteTimeout: s.config.writeTimeout(),
	}

	s.logger.Info("Server listening", zap.String("addr", s.config.Listen.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server: new requests are answered
// with 503 while existing requests are allowed to finish. If the context
// is canceled before all requests complete, the context's error is
// returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownMu.Lock()
	s.shutdown = true
	s.shutdownMu.Unlock()

	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
