package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func check(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.Health().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_HealthLifecycle(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	for _, service := range []string{"", ServiceName} {
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, service))
	}

	h.Serving()
	for _, service := range []string{"", ServiceName} {
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, service))
	}

	h.Shutdown()
	for _, service := range []string{"", ServiceName} {
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, service))
	}

	// updates after shutdown are ignored
	h.Serving()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	_, err := h.Health().Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)
}
