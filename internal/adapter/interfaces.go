// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services go-places
// depends on.
//
// The only external dependency is address geocoding. [Geocoder] decouples the
// place service from the provider: [NewStubGeocoder] returns a fixed
// coordinate and needs no network, [NewHTTPGeocoder] talks to a
// Google-compatible geocoding API over HTTP.
//
// Error values defined in errors.go are mapped from provider responses by
// mapHTTPError and mapGeocodeStatus so that callers can use [errors.Is]
// (e.g. [ErrAddressNotFound] when the provider has no match).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-places/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	// Coordinates returns the location of address. It returns
	// [ErrAddressNotFound] (possibly wrapped) when the address cannot be
	// resolved and another error when the provider could not be reached.
	Coordinates(ctx context.Context, address string) (models.Location, error)
}
