package cwist

import (
	"net"
	"os"
	"os/exec"

	"cwist/cwisterr"
)

// forkWorkerEnv signals a re-exec'd child that fd 3 holds an accepted
// connection to serve, rather than a listening socket to bind.
const forkWorkerEnv = "CWIST_FORK_WORKER"

// serveFork re-execs a single-connection child process per accepted
// connection, rather than forking the whole listening process per
// connection: re-exec keeps exactly one accept loop alive in the
// parent instead of duplicating it into every child. TLS-wrapped
// connections have no raw fd to hand a child, so they fall back to
// being served in this goroutine directly.
func (s *Server) serveFork() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closedForShutdown() {
				return cwisterr.ErrServerClosed
			}
			continue
		}

		tcpConn, ok := conn.(*net.TCPConn)
		if !ok {
			s.handleConnection(conn)
			continue
		}

		if err := s.spawnForkWorker(tcpConn); err != nil {
			s.logger.Printf("cwist: fork worker spawn failed: %v", err)
		}
		tcpConn.Close()
	}
}

// spawnForkWorker duplicates conn's file descriptor into the child's
// ExtraFiles slot and re-execs the current binary, then reaps it in the
// background so the accept loop never blocks on a single connection.
func (s *Server) spawnForkWorker(conn *net.TCPConn) error {
	f, err := conn.File()
	if err != nil {
		return err
	}

	cmd := exec.Command(os.Args[0], os.Args[1:]...)
	cmd.Env = append(os.Environ(), forkWorkerEnv+"=1")
	cmd.ExtraFiles = []*os.File{f}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		f.Close()
		return err
	}
	go func() {
		cmd.Wait()
		f.Close()
	}()
	return nil
}

// RunForkWorker must be called at the very top of main(), after
// registering routes but before Serve, when Config.Scheduling is
// SchedulingFork. If this process was re-exec'd by spawnForkWorker to
// handle exactly one connection, it serves that connection on fd 3 and
// then exits the process; it does not return in that case. In the
// parent (listening) process it is a no-op returning false.
func (s *Server) RunForkWorker() bool {
	if os.Getenv(forkWorkerEnv) == "" {
		return false
	}
	f := os.NewFile(3, "cwist-fork-conn")
	conn, err := net.FileConn(f)
	f.Close()
	if err != nil {
		os.Exit(1)
	}
	s.handleConnection(conn)
	os.Exit(0)
	return true
}
