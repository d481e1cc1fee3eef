// Package grpc exposes the gRPC side of the notes server. Only the standard
// grpc.health.v1 service is served; the notes API itself is HTTP only.
package grpc

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("")
// status.
const ServiceName = "notes.v1.Notes"

// Handler is the root gRPC transport handler.
//
// It owns the health server. Statuses start as NOT_SERVING and flip to
// SERVING once the transport is accepting connections.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Serving marks every service as SERVING.
func (h *Handler) Serving() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Debug().Msg("gRPC health set to SERVING")
}

// Shutdown marks every service as NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
}

// Health returns the underlying health server.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
