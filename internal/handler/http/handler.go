package http

import (
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/service"
	"github.com/MKhiriev/go-file-share/internal/validators"
	"github.com/MKhiriev/go-file-share/models"
)

// defaultMaxUploadSize applies when the configuration leaves the limit unset.
const defaultMaxUploadSize = 32 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator
	buildInfo models.AppBuildInfo

	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		buildInfo:      buildInfo,
		maxUploadSize:  maxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
