package cwist

import (
	"net"

	"cwist/cwisterr"
	"cwist/reactor"
	"cwist/tlsconf"
)

// Serve binds the listener (wrapping it in TLS if configured) and
// accepts connections according to the configured scheduling model.
// It blocks until Shutdown is called.
func (s *Server) Serve() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return cwisterr.ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	rawLn, err := listenTCP(s.cfg.ListenAddr, s.cfg.AcceptBacklog)
	if err != nil {
		return err
	}
	var tcpLn net.Listener = rawLn
	s.rawListener = rawLn

	var ln net.Listener = tcpLn
	if s.cfg.TLS != nil {
		tlsCfg, loadErr := tlsconf.Load(s.cfg.TLS.CertPath, s.cfg.TLS.KeyPath)
		if loadErr != nil {
			tcpLn.Close()
			return loadErr
		}
		ln = tlsconf.WrapListener(tcpLn, tlsCfg)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	close(s.ready)

	switch s.cfg.Scheduling {
	case SchedulingEventLoop:
		return s.serveEventLoop()
	case SchedulingFork:
		return s.serveFork()
	default:
		return s.serveThreads()
	}
}

// closedForShutdown reports whether Shutdown has already fired,
// distinguishing a deliberate listener close from a real accept error.
func (s *Server) closedForShutdown() bool {
	select {
	case <-s.shutdownCh:
		return true
	default:
		return false
	}
}

// serveThreads is the default scheduling model: one goroutine per
// accepted connection.
func (s *Server) serveThreads() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closedForShutdown() {
				return cwisterr.ErrServerClosed
			}
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// serveEventLoop multiplexes the listening socket's readiness with the
// platform reactor; each accepted connection is handled synchronously
// in this same goroutine before the next Wait() call. It falls back to
// serveThreads if the platform has no reactor backend.
func (s *Server) serveEventLoop() error {
	loop, err := reactor.New()
	if err != nil {
		s.logger.Printf("cwist: event-loop scheduling unavailable (%v), falling back to threads model", err)
		return s.serveThreads()
	}
	defer loop.Close()

	fd, err := listenerFD(s.rawListener)
	if err != nil {
		return err
	}
	if err := loop.Register(fd); err != nil {
		return err
	}

	for {
		if err := loop.Wait(); err != nil {
			if s.closedForShutdown() {
				return cwisterr.ErrServerClosed
			}
			continue
		}
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closedForShutdown() {
				return cwisterr.ErrServerClosed
			}
			continue
		}
		s.handleConnection(conn)
	}
}
