package adapter

import "errors"

var (
	// ErrAddressNotFound is returned when the provider has no coordinates
	// for the requested address.
	ErrAddressNotFound = errors.New("could not find location for the specified address")

	// ErrGeocoderUnavailable is returned when the provider answers with a
	// non-2xx status.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")

	// ErrGeocoderRejected is returned when the provider refuses the request
	// (quota exceeded, denied key, malformed request).
	ErrGeocoderRejected = errors.New("geocoder rejected the request")
)
