package http

import (
	"time"

	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/service"
)

// maxBodyBytes caps a request body after decompression. Captures arrive as
// base64 inside JSON, so the cap is well above the decoded payload limit.
const maxBodyBytes = 32 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
