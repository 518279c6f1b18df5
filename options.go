package cwist

import (
	"log"

	"cwist/middleware"
)

// ServerOption customizes a Server at construction time.
type ServerOption func(*Server)

// WithMiddleware appends middleware to the chain in FIFO order. The
// chain is frozen once Serve/Run is called.
func WithMiddleware(mw ...middleware.Middleware) ServerOption {
	return func(s *Server) {
		s.chain.Use(mw...)
	}
}

// WithErrorHandler installs the handler invoked for router misses and
// policy errors in place of the default JSON error body.
func WithErrorHandler(h ErrorHandler) ServerOption {
	return func(s *Server) {
		s.errorHandler = h
	}
}

// WithLogger overrides the *log.Logger used for the server's own
// diagnostic output. Defaults to log.Default(). The access-log
// middleware is not installed by the server; it takes its own logger.
func WithLogger(logger *log.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}
