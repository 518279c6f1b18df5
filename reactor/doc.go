// Package reactor implements the readiness multiplexer cwist's
// event-loop scheduling model uses on the listening socket: epoll on
// Linux, kqueue on BSD/macOS, IOCP on Windows. On any other platform New
// returns an error and the server falls back to the threads model. Per-connection
// work still runs synchronously in the dispatching goroutine once the
// listening socket reports readiness — only the listening socket is
// multiplexed.
package reactor
