package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Google Geocoding API statuses.
const (
	geocodeStatusOK          = "OK"
	geocodeStatusZeroResults = "ZERO_RESULTS"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrGeocoderUnavailable, resp.StatusCode(), body)
}

func mapGeocodeStatus(status, message string) error {
	switch status {
	case geocodeStatusOK:
		return nil
	case geocodeStatusZeroResults:
		return ErrAddressNotFound
	default:
		if message == "" {
			return fmt.Errorf("%w: %s", ErrGeocoderRejected, status)
		}
		return fmt.Errorf("%w: %s: %s", ErrGeocoderRejected, status, message)
	}
}
