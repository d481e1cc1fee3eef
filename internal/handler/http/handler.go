package http

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds each request's context; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithRequestTimeout sets the per-request deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: config.DefaultRequestTimeout,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Dur("request_timeout", h.requestTimeout).Msg("http handler created")
	return h
}
