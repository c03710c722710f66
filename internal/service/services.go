package service

import (
	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/internal/workers"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PlaceService   PlaceService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	geocoder adapter.Geocoder,
	cleaner workers.ImageCleaner,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, ids, cfg.App, logger)),
		UserService: NewUserService(storages.UserRepository, logger),
		PlaceService: NewPlaceValidationService().
			Wrap(NewPlaceService(storages, geocoder, cleaner, ids, logger)),
		AppInfoService: appInfo,
	}, nil
}
