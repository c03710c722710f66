// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-places HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of a response. Keeping them in one place ensures
// consistent wording throughout the API.
package app

// Messages shared by every endpoint.
const (
	// MsgInvalidInputs is returned when a request fails validation: a
	// missing field, a too short description or password, a malformed
	// e-mail, a bad image or an address that cannot be geocoded.
	MsgInvalidInputs = "Invalid inputs passed, please check your data."

	// MsgRouteNotFound is returned for every unknown route.
	MsgRouteNotFound = "Could not find this route"

	// MsgAuthenticationFailed is returned by the auth middleware when the
	// bearer token is missing, malformed, expired or signed with another key.
	MsgAuthenticationFailed = "Authentication failed!"

	// MsgSomethingWentWrong is the fallback for unexpected failures.
	MsgSomethingWentWrong = "Something went wrong, please try again later"
)

// Messages of the users endpoints.
const (
	MsgUserExists          = "User exists already, please login instead."
	MsgInvalidCredentials  = "Could not identify user, credentials seem to be wrong."
	MsgSignupFailed        = "Signing up failed, please try again later."
	MsgLoginFailed         = "Logging in failed, please try again later."
	MsgFetchingUsersFailed = "Fetching users failed, please try again later."
)

// Messages of the places endpoints.
const (
	MsgPlaceNotFound        = "Could not find a place for the provided id."
	MsgUserPlacesNotFound   = "Could not find a place for the provided user id."
	MsgCreatorNotFound      = "Could not find user for provided id"
	MsgDeletePlaceNotFound  = "Could not find place to delete, please try again later."
	MsgNotAllowedToEdit     = "You are not allowed to edit this place"
	MsgNotAllowedToDelete   = "You are not allowed to delete this place"
	MsgFetchingPlaceFailed  = "Something went wrong, could not find a place."
	MsgFetchingPlacesFailed = "Fetching places failed, please try again"
	MsgCreatingPlaceFailed  = "Creating place failed, please try again"
	MsgUpdatingPlaceFailed  = "Something went wrong, could not update place"
	MsgDeletingPlaceFailed  = "Something went wrong, could not delete place"
	MsgDeletedPlace         = "Deleted place."
)
