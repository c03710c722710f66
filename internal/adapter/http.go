package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

// geocodeResponse is the subset of the Google Geocoding API response
// used by [httpGeocoder].
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location models.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type httpGeocoder struct {
	client   *utils.HTTPClient
	endpoint string
	apiKey   string

	logger *logger.Logger
}

// NewHTTPGeocoder constructs a [Geocoder] that queries the Google-compatible
// geocoding endpoint at cfg.GeocoderURL with cfg.GeocoderAPIKey. Requests are
// bounded by cfg.RequestTimeout.
//
// Returns an error if cfg.GeocoderURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPGeocoder(cfg config.Adapter, logger *logger.Logger) (Geocoder, error) {
	endpoint, err := normalizeBaseURL(cfg.GeocoderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("endpoint", endpoint).Msg("creating http geocoder")
	return &httpGeocoder{client: client, endpoint: endpoint, apiKey: cfg.GeocoderAPIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Coordinates implements [Geocoder]. It GETs <endpoint>?address=<address>&key=<key>
// and returns the location of the first result.
func (g *httpGeocoder) Coordinates(ctx context.Context, address string) (models.Location, error) {
	log := logger.FromContext(ctx)

	var body geocodeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("address", address).
		SetQueryParam("key", g.apiKey).
		SetResult(&body).
		Get(g.endpoint)
	if err != nil {
		log.Err(err).Str("func", "*httpGeocoder.Coordinates").Msg("geocoder request failed")
		return models.Location{}, fmt.Errorf("geocode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpGeocoder.Coordinates").Int("status", resp.StatusCode()).Msg("geocoder returned error status")
		return models.Location{}, err
	}

	if err = mapGeocodeStatus(body.Status, body.ErrorMessage); err != nil {
		log.Warn().Err(err).Str("func", "*httpGeocoder.Coordinates").Str("address", address).Msg("address was not geocoded")
		return models.Location{}, err
	}
	if len(body.Results) == 0 {
		return models.Location{}, ErrAddressNotFound
	}

	return body.Results[0].Geometry.Location, nil
}
