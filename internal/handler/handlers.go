package handler

import (
	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/handler/grpc"
	"github.com/MKhiriev/go-file-share/internal/handler/http"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/service"
	"github.com/MKhiriev/go-file-share/models"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// The gRPC handler only serves health, probed through pinger.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, buildInfo, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, cfg.HealthProbeInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
