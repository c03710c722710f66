package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-places/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their ordered list of places.
//
// Every method joins the transaction carried by ctx, if any.
type UserRepository interface {
	// CreateUser stores a new user with an empty places list.
	// Returns ErrEmailAlreadyExists when the e-mail is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no user has the given id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user has the given e-mail.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// AppendPlace adds placeID to the end of the user's places list.
	AppendPlace(ctx context.Context, userID, placeID string) error
	// RemovePlace removes placeID from the user's places list.
	RemovePlace(ctx context.Context, userID, placeID string) error
}

// PlaceRepository persists places.
//
// Every method joins the transaction carried by ctx, if any.
type PlaceRepository interface {
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	// FindPlaceByID returns ErrPlaceNotFound when no place has the given id.
	FindPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	FindPlacesByCreator(ctx context.Context, userID string) ([]models.Place, error)
	// UpdatePlace overwrites the title and description of an existing place.
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, error)
	DeletePlace(ctx context.Context, placeID string) error
}

// Transactor runs a group of repository calls as one atomic unit of work.
type Transactor interface {
	// WithinTransaction calls fn with a context bound to a database
	// transaction. The transaction is committed when fn returns nil and
	// rolled back when it returns an error or panics. A call made with a
	// context that already carries a transaction joins it.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImageStorage keeps uploaded images.
type ImageStorage interface {
	// Save writes the image and returns its public relative path.
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
	// Remove deletes an image previously returned by Save.
	Remove(ctx context.Context, path string) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
