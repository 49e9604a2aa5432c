// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewServer builds a *grpc.Server with call logging and panic recovery and
// registers the handler's services on it.
func (h *Handler) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.ChainUnaryInterceptor(h.unaryInterceptors()...),
		grpc.ChainStreamInterceptor(h.streamInterceptors()...),
	)

	server := grpc.NewServer(opts...)
	h.Register(server)
	return server
}

func (h *Handler) unaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(interceptorLogger(h.logger), logging.WithLogOnEvents(logging.FinishCall)),
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(h.recoverPanic)),
	}
}

func (h *Handler) streamInterceptors() []grpc.StreamServerInterceptor {
	return []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(interceptorLogger(h.logger), logging.WithLogOnEvents(logging.FinishCall)),
		recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(h.recoverPanic)),
	}
}

func (h *Handler) recoverPanic(_ context.Context, p any) error {
	h.logger.Error().Str("panic", fmt.Sprint(p)).Msg("gRPC handler panicked")
	return status.Error(codes.Internal, "internal error")
}

// interceptorLogger adapts the zerolog wrapper to the middleware logging
// interface. Fields arrive as alternating keys and values.
func interceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		log := l.With().Fields(fields).Logger()

		switch lvl {
		case logging.LevelDebug:
			log.Debug().Msg(msg)
		case logging.LevelInfo:
			log.Info().Msg(msg)
		case logging.LevelWarn:
			log.Warn().Msg(msg)
		case logging.LevelError:
			log.Error().Msg(msg)
		default:
			log.Info().Int("level", int(lvl)).Msg(msg)
		}
	})
}
