// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can sign in and own places.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the UUID of the user.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address used to sign in.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	Password string `json:"-"`

	// Image is the relative path of the uploaded avatar.
	Image string `json:"image"`

	// Places is the ordered list of IDs of places created by the user.
	// Every entry has a matching Place whose Creator equals ID.
	Places []string `json:"places"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// OwnsPlace reports whether placeID is in the user's places list.
func (u User) OwnsPlace(placeID string) bool {
	for _, id := range u.Places {
		if id == placeID {
			return true
		}
	}
	return false
}
