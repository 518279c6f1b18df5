//go:build darwin || freebsd || netbsd || openbsd
// +build darwin freebsd netbsd openbsd

// kqueue-based event loop for BSD-family platforms.

package reactor

import "golang.org/x/sys/unix"

type bsdLoop struct {
	kq int
	fd int
}

// New constructs the platform-specific EventLoop for BSD/macOS.
func New() (EventLoop, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	return &bsdLoop{kq: kq}, nil
}

func (r *bsdLoop) Register(fd uintptr) error {
	r.fd = int(fd)
	changes := []unix.Kevent_t{{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
	}}
	_, err := unix.Kevent(r.kq, changes, nil, nil)
	return err
}

func (r *bsdLoop) Wait() error {
	events := make([]unix.Kevent_t, 1)
	for {
		_, err := unix.Kevent(r.kq, nil, events, nil)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

func (r *bsdLoop) Close() error {
	return unix.Close(r.kq)
}
