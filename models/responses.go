// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is returned by operations that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned after a successful signup or login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// PlaceResponse wraps a single place.
type PlaceResponse struct {
	Place Place `json:"place"`
}

// PlacesResponse wraps a list of places.
type PlacesResponse struct {
	Places []Place `json:"places"`
}

// UsersResponse wraps a list of users.
type UsersResponse struct {
	Users []User `json:"users"`
}

// HealthResponse reports service and database availability.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	DB      string `json:"db,omitempty"`
}
