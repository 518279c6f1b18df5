// Package cwisterr collects the sentinel errors shared across cwist's
// packages, plus the Status type the HTTP worker uses to carry a
// status code and close decision up from the reader and parser.
package cwisterr

import "errors"

var (
	// ErrAlreadyRunning is returned by Server.Serve when the server is
	// already accepting connections.
	ErrAlreadyRunning = errors.New("cwist: server already running")

	// ErrServerClosed is returned by Server.Serve after Shutdown.
	ErrServerClosed = errors.New("cwist: server closed")

	// ErrExecutorClosed is returned by Executor.Submit after Close.
	ErrExecutorClosed = errors.New("cwist: executor closed")

	// ErrHeadersTooLarge is returned by the connection reader when the
	// header block exceeds the read buffer ceiling before CRLFCRLF is found.
	ErrHeadersTooLarge = errors.New("cwist: request headers too large")

	// ErrBodyTooLarge is returned when Content-Length exceeds the
	// configured maximum body size.
	ErrBodyTooLarge = errors.New("cwist: request body too large")

	// ErrChunkedUnsupported is returned when Transfer-Encoding: chunked
	// is present on a request.
	ErrChunkedUnsupported = errors.New("cwist: chunked transfer-encoding is not supported")

	// ErrMalformedRequest is the cause the connection reader attaches to
	// its 400 Status when the request line or header block cannot be
	// parsed.
	ErrMalformedRequest = errors.New("cwist: malformed request")

	// ErrConnectionClosed is returned by reads/writes on a connection the
	// peer has closed or that timed out.
	ErrConnectionClosed = errors.New("cwist: connection closed")

	// ErrUpgradeRejected describes a WebSocket upgrade request that fails
	// validation (§4.8). No function returns it: Server.HandleWS answers
	// such a request with a 400 response instead.
	ErrUpgradeRejected = errors.New("cwist: websocket upgrade rejected")

	// ErrWebSocketClosed is returned by ws.Conn.Send once the connection
	// has entered the CLOSING or CLOSED state (a CLOSE frame may still be
	// sent while CLOSING).
	ErrWebSocketClosed = errors.New("cwist: websocket connection closed")

	// ErrUnmaskedClientFrame is returned by the frame reader when a
	// client-to-server frame arrives without the mask bit set.
	ErrUnmaskedClientFrame = errors.New("cwist: client frame must be masked")

	// ErrTLSNotConfigured describes a TLS-only code path run against a
	// server with no TLS configuration loaded. No function returns it.
	ErrTLSNotConfigured = errors.New("cwist: tls not configured")
)

// Status is an HTTP error carrying the status code the connection
// worker should answer with, and whether the connection must close
// afterward. When no response should be sent (e.g. on a read timeout),
// the connection reader returns a nil *Status together with a non-nil
// error.
type Status struct {
	Code  int
	Text  string
	Close bool
	Err   error // underlying cause, for logging; may be nil
}

func (s *Status) Error() string {
	if s.Err != nil {
		return s.Err.Error()
	}
	return s.Text
}

func (s *Status) Unwrap() error { return s.Err }

// NewStatus builds a Status that always closes the connection after
// the response is written, the policy applied to every protocol or
// policy error.
func NewStatus(code int, text string, cause error) *Status {
	return &Status{Code: code, Text: text, Close: true, Err: cause}
}
