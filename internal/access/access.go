// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access decides whether an authenticated user may change a resource.
package access

import "github.com/MKhiriev/go-places/models"

// Decision is the outcome of an access check.
type Decision int

const (
	// Deny is the zero value so that an unset decision never grants access.
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// CanMutatePlace decides whether requesterID may update or delete place.
// Only the place's creator is allowed.
func CanMutatePlace(requesterID string, place models.Place) Decision {
	if requesterID == "" || place.Creator == "" {
		return Deny
	}
	if requesterID != place.Creator {
		return Deny
	}

	return Allow
}
