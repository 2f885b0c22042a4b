package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.workers != nil {
		s.workers.Stop()
	}
}

// run serves until ctx is cancelled or the listener fails, then shuts
// everything down.
func (s *server) run(ctx context.Context) {
	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		s.workers.Run(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		s.logger.Err(err).Msg("HTTP server stopped")
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}
