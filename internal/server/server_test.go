package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-note-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func localConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		ShutdownTimeout: 5 * time.Second,
	}
}

func newTestHandlers() *handler.Handlers {
	services := &service.Services{}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Equal(t, config.DefaultShutdownTimeout, srv.shutdownTimeout)
	assert.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
}

func TestHTTPServer_Lifecycle(t *testing.T) {
	hs := newHTTPServer(newTestHandlers().HTTP.Init(), localConfig(), logger.Nop())
	require.NoError(t, hs.listen())

	done := make(chan error, 1)
	go func() { done <- hs.RunServer() }()

	resp, err := http.Get("http://" + hs.listener.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, app.MsgAPIRunning, string(body))

	require.NoError(t, hs.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}

func TestHTTPServer_RunWithoutListen(t *testing.T) {
	hs := newHTTPServer(http.NotFoundHandler(), localConfig(), logger.Nop())
	assert.ErrorIs(t, hs.RunServer(), errNotListening)
}

func TestGRPCServer_HealthLifecycle(t *testing.T) {
	h := myGRPC.NewHandler(nil, logger.Nop())
	gs := newGRPCServer(h, localConfig(), logger.Nop())
	require.NoError(t, gs.listen())

	done := make(chan error, 1)
	go func() { done <- gs.RunServer() }()

	conn, err := grpc.NewClient(gs.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, gs.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}

	resp, err := h.Health().Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(), localConfig(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := localConfig()
	cfg.HTTPAddress = taken.Addr().String()
	cfg.GRPCAddress = ""

	s, err := NewServer(newTestHandlers(), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	assert.ErrorContains(t, err, "HTTP listen")
}
