//go:build linux
// +build linux

// File: reactor/reactor_linux.go
//
// Linux epoll(7)-based event loop implementation and factory.

package reactor

import (
	"golang.org/x/sys/unix"
)

// linuxLoop is an epoll-based readiness multiplexer for a single
// listening-socket file descriptor.
type linuxLoop struct {
	epfd int
	fd   int
}

// New constructs the platform-specific EventLoop for Linux.
func New() (EventLoop, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, err
	}
	return &linuxLoop{epfd: epfd}, nil
}

// Register arms epoll to watch fd for read (accept) readiness.
func (r *linuxLoop) Register(fd uintptr) error {
	r.fd = int(fd)
	event := &unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(fd),
	}
	return unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, r.fd, event)
}

// Wait blocks until the registered fd becomes readable.
func (r *linuxLoop) Wait() error {
	var events [1]unix.EpollEvent
	for {
		_, err := unix.EpollWait(r.epfd, events[:], -1)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

// Close releases the epoll instance.
func (r *linuxLoop) Close() error {
	return unix.Close(r.epfd)
}
