package reactor

// EventLoop multiplexes readiness on a single listening-socket file
// descriptor for cwist's event-loop scheduling model.
type EventLoop interface {
	// Register arms the loop to watch fd for read (accept) readiness.
	Register(fd uintptr) error
	// Wait blocks until fd becomes readable (or an error occurs), then
	// returns. It is called in a loop by the dispatching goroutine.
	Wait() error
	// Close releases the loop's own kernel resources (epoll fd, IOCP
	// handle); it does not close fd.
	Close() error
}
