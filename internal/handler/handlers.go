package handler

import (
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/handler/http"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	images store.ImageStorage,
	cleaner workers.ImageCleaner,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, images, cleaner, cfg, logger),
	}, nil
}
