package cwist

import "time"

// Scheduling selects the concurrency model the accept loop uses to
// hand off an accepted connection to a worker.
type Scheduling int

const (
	// SchedulingThreads spawns one goroutine per accepted connection.
	// This is the default.
	SchedulingThreads Scheduling = iota
	// SchedulingFork re-execs a single-connection child process per
	// accepted connection (see serveFork in fork.go for the rationale
	// behind re-exec over forking the whole process).
	SchedulingFork
	// SchedulingEventLoop multiplexes the listening socket with the
	// platform reactor (epoll/kqueue/IOCP); per-connection work still
	// runs synchronously in the dispatching goroutine.
	SchedulingEventLoop
)

// TLSConfig names the PEM cert/key pair for the TLS listener variant.
type TLSConfig struct {
	CertPath string
	KeyPath  string
}

// StaticRoute is one (url_prefix, fs_root) pair registered at startup.
type StaticRoute struct {
	URLPrefix string
	FSRoot    string
}

// Config holds every programmatic server parameter.
type Config struct {
	// ListenAddr is the "host:port" (or ":port") address to bind.
	ListenAddr string

	// TLS enables the TLS listener variant when non-nil.
	TLS *TLSConfig

	// Scheduling selects the concurrency model (default
	// SchedulingThreads).
	Scheduling Scheduling

	// AcceptBacklog is the listen backlog passed to the socket's
	// listen(2) call on platforms where cwist binds the listener
	// itself (see listen_unix.go); ignored elsewhere.
	AcceptBacklog int

	// StaticRoutes are registered before Serve via RegisterStatic; this
	// field lets callers supply them declaratively through Config too.
	StaticRoutes []StaticRoute

	// ReadBufferCeiling, MaxBodySize, IOTimeout tune the connection
	// reader's growable buffer, maximum accepted body size, and
	// per-read/write deadline.
	ReadBufferCeiling int
	MaxBodySize       int
	IOTimeout         time.Duration

	// RateLimitRPM is the fixed-window rate limiter's requests-per-minute
	// ceiling. New installs a middleware.RateLimiter at this ceiling
	// automatically; set to 0 to disable the built-in limiter.
	RateLimitRPM int

	// ExecutorWorkers sizes the background task executor backing
	// Server.Submit.
	ExecutorWorkers int

	// ShutdownTimeout bounds how long Shutdown waits for in-flight
	// connections before returning.
	ShutdownTimeout time.Duration

	// SessionShards sizes the WebSocket connection registry's shard
	// count (power-of-two, rounded up by internal/session.NewRegistry).
	SessionShards int
}

// DefaultConfig returns the baseline configuration: threaded
// scheduling, a 64 KiB read buffer, an 8 MiB body cap, a 30s I/O
// timeout, and a 60 req/min rate limit.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:        ":8080",
		Scheduling:        SchedulingThreads,
		AcceptBacklog:     128,
		ReadBufferCeiling: 64 * 1024,
		MaxBodySize:       8 * 1024 * 1024,
		IOTimeout:         30 * time.Second,
		RateLimitRPM:      60,
		ExecutorWorkers:   4,
		ShutdownTimeout:   30 * time.Second,
		SessionShards:     16,
	}
}
