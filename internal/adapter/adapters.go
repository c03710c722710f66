package adapter

import (
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
)

// NewGeocoder picks the HTTP geocoder when a provider URL is configured and
// the stub otherwise.
func NewGeocoder(cfg config.Adapter, logger *logger.Logger) (Geocoder, error) {
	if cfg.GeocoderURL == "" {
		logger.Info().Msg("geocoder url is not set, using fixed coordinates")
		return NewStubGeocoder(), nil
	}

	return NewHTTPGeocoder(cfg, logger)
}
