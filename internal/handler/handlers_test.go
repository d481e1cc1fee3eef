package handler

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// deadlineAppInfo records the deadline of the request context it sees.
type deadlineAppInfo struct {
	deadline time.Time
}

func (d *deadlineAppInfo) GetAppVersion(ctx context.Context) string {
	d.deadline, _ = ctx.Deadline()
	return "v"
}

// newTestServices returns a nil *service.Services. Both http.NewHandler and
// grpc.NewHandler only store the pointer without dereferencing it, so nil is
// safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_BothAddresses verifies that when both HTTPAddress and
// GRPCAddress are configured, both handlers are initialised and no error is
// returned.
func TestNewHandlers_BothAddresses(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: ":8080",
		GRPCAddress: ":9090",
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_OnlyHTTP verifies that when only HTTPAddress is configured,
// the HTTP handler is initialised and the gRPC handler remains nil.
func TestNewHandlers_OnlyHTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: ":8080",
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.Nil(t, h.GRPC, "expected gRPC handler to be nil")
}

// TestNewHandlers_OnlyGRPC verifies that when only GRPCAddress is configured,
// the gRPC handler is initialised and the HTTP handler remains nil.
func TestNewHandlers_OnlyGRPC(t *testing.T) {
	cfg := config.Server{
		GRPCAddress: ":9090",
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_NoAddresses verifies that when neither HTTPAddress nor
// GRPCAddress is configured, NewHandlers returns errNoHandlersAreCreated and
// a nil *Handlers.
func TestNewHandlers_NoAddresses(t *testing.T) {
	cfg := config.Server{}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_RequestTimeoutApplied verifies that the configured request
// timeout bounds the request context seen by the services.
func TestNewHandlers_RequestTimeoutApplied(t *testing.T) {
	appInfo := &deadlineAppInfo{}
	services := &service.Services{AppInfoService: appInfo}
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: time.Minute}

	h, err := NewHandlers(services, cfg, newTestLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/version", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.False(t, appInfo.deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(time.Minute), appInfo.deadline, 5*time.Second)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}

	h1, err1 := NewHandlers(newTestServices(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
