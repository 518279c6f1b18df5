package cwist

import "context"

// Shutdown stops accepting new connections, closes the listener,
// closes every tracked WebSocket connection, and waits for in-flight
// threads-model workers to finish or ctx to expire, whichever comes
// first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.shutdownCh)
	if s.listener != nil {
		s.listener.Close()
	}
	s.sessions.CloseAll()
	s.executor.Close()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run calls Serve in the background and blocks until ctx is canceled,
// then performs a graceful Shutdown bounded by Config.ShutdownTimeout —
// the common single-call entry point for a simple main().
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}
