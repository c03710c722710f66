package adapter

import (
	"context"

	"github.com/MKhiriev/go-places/models"
)

// DefaultLocation is returned by the stub geocoder for every address.
var DefaultLocation = models.Location{Lat: 40.7484474, Lng: -73.9871516}

type stubGeocoder struct {
	location models.Location
}

// NewStubGeocoder returns a [Geocoder] that resolves every address to
// [DefaultLocation] without any network access.
func NewStubGeocoder() Geocoder {
	return &stubGeocoder{location: DefaultLocation}
}

func (s *stubGeocoder) Coordinates(ctx context.Context, address string) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	return s.location, nil
}
