package sshwatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	wishlogging "github.com/charmbracelet/wish/logging"

	"codetally/internal/adapters/progress"
	"codetally/internal/config"
	"codetally/internal/domain"
	"codetally/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server streams a session's progress events to SSH clients as plain text lines
type Server struct {
	addr               string
	authorizedKeysPath string
	registry           *progress.Registry
	wishServer         *ssh.Server
}

// NewServer creates a new SSH watch server on addr
func NewServer(addr string, registry *progress.Registry) (*Server, error) {
	s := &Server{
		addr:     addr,
		registry: registry,
	}

	sshDir := config.GetSSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(sshDir, "id_ed25519")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			s.watchMiddleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting SSH server", "address", s.addr)
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}

// watchMiddleware attaches the SSH session as the progress sink of the requested session id
func (s *Server) watchMiddleware() wish.Middleware {
	return func(ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			args := sess.Command()
			if len(args) != 1 || args[0] == "" {
				wish.Fatalln(sess, "usage: ssh -p PORT HOST <session-id>")
				return
			}
			sessionID := args[0]

			sink := progress.NewStreamSink(sess, encodeLine, nil, nil)
			if err := s.registry.Open(sessionID, sink); err != nil {
				wish.Fatalln(sess, err)
				return
			}
			logging.Logger.Info("SSH watcher attached",
				"session_id", sessionID,
				"user", sess.User(),
				"remote_addr", sess.RemoteAddr().String())

			select {
			case <-sess.Context().Done():
			case <-sink.Done():
			}
			s.registry.Release(sessionID, sink)
			sink.Close()

			logging.Logger.Info("SSH watcher detached", "session_id", sessionID, "user", sess.User())
			_ = sess.Exit(0)
		}
	}
}

// encodeLine renders an event as "15:04:05 [severity] message"
func encodeLine(event domain.ProgressEvent) ([]byte, error) {
	return []byte(fmt.Sprintf("%s [%s] %s\n",
		event.Timestamp.Local().Format(time.TimeOnly),
		event.Severity,
		event.Message)), nil
}
