// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest carries the fields submitted by the signup form.
// Image is the path of the already stored avatar.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"-"`
}

// LoginRequest carries the credentials submitted on login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePlaceRequest carries the fields of a new place.
// Creator is taken from the verified token, never from the body.
type CreatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Image       string `json:"-"`
	Creator     string `json:"-"`
}

// UpdatePlaceRequest carries the editable fields of a place.
type UpdatePlaceRequest struct {
	PlaceID     string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RequesterID string `json:"-"`
}

// DeletePlaceRequest identifies a place to delete and who is asking.
type DeletePlaceRequest struct {
	PlaceID     string
	RequesterID string
}
