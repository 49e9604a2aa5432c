// Package grpc exposes the gRPC surface of the file-sharing server: the
// standard health service, driven by the reachability of the database.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "gofileshare.FileShare"

const defaultProbeInterval = 15 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows the result of the last
// probe of the database. A Handler is also a background worker: Run keeps
// probing until its context is cancelled.
type Handler struct {
	health *health.Server
	pinger Pinger

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The service is reported NOT_SERVING
// until the first probe succeeds.
func NewHandler(pinger Pinger, probeInterval time.Duration, logger *logger.Logger) *Handler {
	if probeInterval <= 0 {
		probeInterval = defaultProbeInterval
	}

	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		probeInterval: probeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Probe pings the database once and publishes the resulting status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Run probes immediately and then every probe interval until ctx is done.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown marks every service NOT_SERVING so balancers drain the server
// before it stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
