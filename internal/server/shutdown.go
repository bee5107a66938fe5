package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownGrace = 5 * time.Second

// Run serves HTTP until ctx is cancelled, then drains in-flight
// requests before returning. Callers hand it a signal-bound context.
func (s *Server) Run(ctx context.Context) error {
	httpServer := s.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("port", s.cfg.ServerPort))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down, draining in-flight requests")
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(drainCtx); err != nil {
		s.logger.Error("Forced shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server exiting")
	return nil
}
