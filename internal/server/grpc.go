package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-file-share/internal/config"
	myGRPC "github.com/MKhiriev/go-file-share/internal/handler/grpc"
	"github.com/MKhiriev/go-file-share/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		server:  handler.NewServer(),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING first, then stops gracefully unless ctx
// expires, in which case open streams are cut.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
