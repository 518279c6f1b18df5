//go:build windows
// +build windows

// File: reactor/reactor_windows.go
//
// Windows IOCP (I/O Completion Port) event loop implementation and
// factory.

package reactor

import (
	"golang.org/x/sys/windows"
)

// windowsLoop is an IOCP-based readiness multiplexer for a single
// listening-socket handle.
type windowsLoop struct {
	iocp windows.Handle
}

// New constructs the platform-specific EventLoop for Windows.
func New() (EventLoop, error) {
	port, err := windows.CreateIoCompletionPort(windows.InvalidHandle, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	return &windowsLoop{iocp: port}, nil
}

// Register associates fd's handle with the completion port.
func (r *windowsLoop) Register(fd uintptr) error {
	_, err := windows.CreateIoCompletionPort(windows.Handle(fd), r.iocp, 0, 0)
	return err
}

// Wait blocks until a completion is posted for the registered handle.
func (r *windowsLoop) Wait() error {
	var n uint32
	var key uintptr
	var overlapped *windows.Overlapped
	return windows.GetQueuedCompletionStatus(r.iocp, &n, &key, &overlapped, windows.INFINITE)
}

// Close releases the IOCP handle.
func (r *windowsLoop) Close() error {
	return windows.CloseHandle(r.iocp)
}
