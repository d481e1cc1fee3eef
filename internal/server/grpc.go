package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-note-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) RunServer() error {
	if g.gRPCNetListener == nil {
		return errNotListening
	}

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	g.handler.Serving()
	return g.server.Serve(g.gRPCNetListener)
}

// Shutdown reports NOT_SERVING first, then drains in-flight RPCs. If ctx ends
// before draining completes the server is stopped hard.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
