package http

import (
	"time"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
)

type Handler struct {
	services *service.Services

	// images stores uploaded files; cleaner discards them when the request
	// that uploaded them fails.
	images  store.ImageStorage
	cleaner workers.ImageCleaner

	uploadsDir     string
	maxImageSize   int64
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	images store.ImageStorage,
	cleaner workers.ImageCleaner,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		images:         images,
		cleaner:        cleaner,
		uploadsDir:     cfg.Storage.Files.UploadsDir,
		maxImageSize:   cfg.Storage.Files.MaxImageSize,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
