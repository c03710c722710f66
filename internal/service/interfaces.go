// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of go-places.
//
// AuthService registers and authenticates users and issues their tokens,
// PlaceService keeps places and the owning user's places list consistent,
// UserService lists accounts and AppInfoService reports the build version
// and database health. Validation is layered on top of the core services
// through the *ServiceWrapper decorators.
package service

import (
	"context"

	"github.com/MKhiriev/go-places/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PlaceService creates and changes places. Every write that touches both a
// place and its owner runs as one atomic unit.
type PlaceService interface {
	CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error)
	GetPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	GetPlacesByUserID(ctx context.Context, userID string) ([]models.Place, error)
	UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error)
	DeletePlace(ctx context.Context, req models.DeletePlaceRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth returns ErrDatabaseUnavailable when the database cannot be reached.
	CheckHealth(ctx context.Context) error
}

// IDGenerator produces identifiers for new users and places.
type IDGenerator interface {
	Generate() string
}

// PlaceServiceWrapper defines middleware composition for PlaceService.
// Implementations wrap an existing PlaceService to add behavior such as
// logging or validating.
type PlaceServiceWrapper interface {
	Wrap(PlaceService) PlaceService // returns a decorated PlaceService applying additional behavior
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
