// Package cwist is an embeddable HTTP/1.1 and WebSocket server
// framework: connection accept/dispatch loop, request reader and
// response serializer, a hashed+parameterized route table, a reentrant
// middleware chain, and a WebSocket upgrade and frame codec. Handlers
// and middleware are the only things application code writes; cwist
// owns the wire protocol, connection lifecycle, routing, and
// concurrency.
package cwist

import (
	"encoding/json"
	"log"
	"net"
	"sync"

	"cwist/concurrency"
	"cwist/internal/session"
	"cwist/middleware"
	"cwist/router"
	"cwist/wire"
	"cwist/ws"
)

// Request, Response, and Method are aliased at the package root so
// application code importing just "cwist" doesn't also need to import
// "cwist/wire" to write a Handler.
type (
	Request  = wire.Request
	Response = wire.Response
	Method   = wire.Method
)

const (
	MethodGET     = wire.MethodGET
	MethodPOST    = wire.MethodPOST
	MethodPUT     = wire.MethodPUT
	MethodDELETE  = wire.MethodDELETE
	MethodPATCH   = wire.MethodPATCH
	MethodHEAD    = wire.MethodHEAD
	MethodOPTIONS = wire.MethodOPTIONS
)

// Handler is the application-supplied function a route resolves to.
type Handler = router.Handler

// ErrorHandler builds the response for a routing or framing error. req
// may be a minimal stand-in (Method "", Path "") when the failure
// happened before the request line could be parsed.
type ErrorHandler func(req *Request, status int) *Response

// WSHandler owns an upgraded connection for as long as it wants the
// socket; the HTTP worker goroutine never returns to the keep-alive
// loop for this connection once WSHandler is invoked.
type WSHandler func(conn *ws.Conn)

const wsHandlerSessionKey = "cwist.ws_handler"

// Server is the facade: one route table, one middleware chain, one
// listener, wired to the scheduling model chosen in Config.
type Server struct {
	cfg          *Config
	table        *router.Table
	chain        *middleware.Chain
	logger       *log.Logger
	errorHandler ErrorHandler
	executor     *concurrency.Executor
	sessions     *session.Registry

	mu          sync.Mutex
	running     bool
	listener    net.Listener
	rawListener *net.TCPListener
	shutdownCh  chan struct{}
	ready       chan struct{}
	wg          sync.WaitGroup
}

// New builds a Server from cfg (DefaultConfig() if nil) and opts.
func New(cfg *Config, opts ...ServerOption) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		cfg:        cfg,
		table:      router.NewTable(),
		chain:      middleware.NewChain(),
		logger:     log.Default(),
		executor:   concurrency.NewExecutor(cfg.ExecutorWorkers),
		sessions:   session.NewRegistry(cfg.SessionShards),
		shutdownCh: make(chan struct{}),
		ready:      make(chan struct{}),
	}
	s.table.SetNotFound(func(req *Request) *Response {
		return s.errorResponse(req, 404, "not found")
	})

	for _, o := range opts {
		o(s)
	}

	if cfg.RateLimitRPM > 0 {
		s.chain.Use(middleware.NewRateLimiter(cfg.RateLimitRPM).Middleware())
	}

	for _, sr := range cfg.StaticRoutes {
		s.table.RegisterStatic(sr.URLPrefix, sr.FSRoot)
	}
	return s
}

// Handle registers an HTTP route.
func (s *Server) Handle(method Method, pattern string, handler Handler) {
	s.table.Register(method, pattern, handler)
}

// HandleWS registers a WebSocket route. The generated HTTP handler
// validates the upgrade, marks the request upgraded, and stashes
// handler on the request's scratch session map so the
// connection worker can hand the upgraded socket to it once the 101
// response has been written.
func (s *Server) HandleWS(pattern string, handler WSHandler) {
	s.table.Register(MethodGET, pattern, func(req *Request) *Response {
		if !ws.Eligible(req) {
			return s.errorResponse(req, 400, "websocket upgrade rejected")
		}
		req.Upgraded = true
		req.Session()[wsHandlerSessionKey] = handler
		return ws.UpgradeResponse(req)
	})
}

// RegisterStatic serves fsRoot under urlPrefix.
func (s *Server) RegisterStatic(urlPrefix, fsRoot string) {
	s.table.RegisterStatic(urlPrefix, fsRoot)
}

// Submit dispatches a background task to the server's worker pool,
// independent of any connection.
func (s *Server) Submit(task func()) error {
	return s.executor.Submit(concurrency.Task(task))
}

// SessionCount returns the number of live, tracked WebSocket
// connections.
func (s *Server) SessionCount() int {
	return s.sessions.Count()
}

// Ready is closed once Serve has bound its listener, so a caller that
// configured an ephemeral port (":0") can read the real Addr.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listener's address. Valid only after Ready is
// closed.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// errorResponse builds the response for a routing/protocol/policy
// error, deferring to the configured ErrorHandler if one was
// installed, otherwise a JSON `{"error": "..."}` body.
func (s *Server) errorResponse(req *Request, status int, message string) *Response {
	if s.errorHandler != nil {
		return s.errorHandler(req, status)
	}
	resp := wire.NewResponse(req.Version, status)
	resp.SetHeader("Content-Type", "application/json")
	body, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	resp.SetBody(body)
	return resp
}

// listenerFD extracts the raw fd backing a *net.TCPListener, for the
// event-loop scheduling model.
func listenerFD(ln *net.TCPListener) (uintptr, error) {
	raw, err := ln.SyscallConn()
	if err != nil {
		return 0, err
	}
	var fd uintptr
	ctlErr := raw.Control(func(f uintptr) { fd = f })
	if ctlErr != nil {
		return 0, ctlErr
	}
	return fd, nil
}
