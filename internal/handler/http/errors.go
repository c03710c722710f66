// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors, reported to the client as invalid inputs.
var (
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrInvalidForm   = errors.New("invalid multipart form was passed")
	ErrImageRequired = errors.New("image is required")
)

// ErrNoUserInContext means a protected handler was reached without the auth
// middleware having stored a user in the request context.
var ErrNoUserInContext = errors.New("no authenticated user in context")
