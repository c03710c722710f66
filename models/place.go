// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Place is a catalog entry created by a user.
type Place struct {
	// ID is the UUID of the place.
	ID string `json:"id"`

	// Title is a short human-readable name of the place.
	Title string `json:"title"`

	// Description is free text describing the place.
	Description string `json:"description"`

	// Address is the postal address the location was resolved from.
	Address string `json:"address"`

	// Location holds the coordinates returned by the geocoder.
	Location Location `json:"location"`

	// Image is the relative path of the uploaded picture.
	Image string `json:"image"`

	// Creator is the ID of the owning user.
	Creator string `json:"creator"`

	// CreatedAt is the timestamp when the place was stored.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Place model.
func (p Place) TableName() string {
	return "places"
}

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
