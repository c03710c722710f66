package store

import (
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository  UserRepository
	PlaceRepository PlaceRepository
	Transactor      Transactor
	ImageStorage    ImageStorage
	HealthChecker   HealthChecker
}

// NewStorages builds the PostgreSQL repositories on top of db and the
// filesystem image storage described by cfg.
func NewStorages(db *DB, cfg config.Files, log *logger.Logger) (*Storages, error) {
	images, err := NewFileImageStorage(cfg.UploadsDir, cfg.MaxImageSize, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		PlaceRepository: NewPlaceRepository(db, log),
		Transactor:      NewTransactor(db, log),
		ImageStorage:    images,
		HealthChecker:   db,
	}, nil
}
