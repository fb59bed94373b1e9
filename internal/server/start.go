package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/backstory/internal/contact"
)

// Start runs the background services and the HTTP server, and blocks until
// ctx is cancelled or the process is interrupted.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contact.Audit(ctx, s.bus, s.logger.With("component", "contact.audit")); err != nil {
		return err
	}
	if s.Cfg.GetContentWatch() {
		if err := s.content.Watch(ctx); err != nil {
			s.logger.Error("Content hot reload disabled", "error", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", s.Cfg.GetAddr())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return s.bus.Close()
}
