package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = config.DefaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives, or until one of
// the transports fails.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports() {
		if err := t.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", t.name(), err))
		}
	}
	return errors.Join(errs...)
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	// bind everything first so a taken port fails startup
	for _, t := range transports {
		if err := t.listen(); err != nil {
			return fmt.Errorf("%s listen: %w", t.name(), err)
		}
	}

	serveErrs := make(chan error, len(transports))
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func(t transport) {
			if err := t.RunServer(); err != nil {
				serveErrs <- fmt.Errorf("%s serve: %w", t.name(), err)
			}
		}(t)
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case runErr = <-serveErrs:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
