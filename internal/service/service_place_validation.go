package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-places/internal/validators"
	"github.com/MKhiriev/go-places/models"
)

// PlaceValidationService checks place requests before handing them to the
// wrapped PlaceService. Every rejection wraps ErrInvalidInput.
type PlaceValidationService struct {
	inner     PlaceService
	validator validators.Validator
}

func NewPlaceValidationService() PlaceServiceWrapper {
	return &PlaceValidationService{
		validator: validators.NewPlaceValidator(),
	}
}

func (v *PlaceValidationService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Place{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.CreatePlace(ctx, req)
}

func (v *PlaceValidationService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	if strings.TrimSpace(placeID) == "" {
		return models.Place{}, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrEmptyPlaceID)
	}

	return v.inner.GetPlaceByID(ctx, placeID)
}

func (v *PlaceValidationService) GetPlacesByUserID(ctx context.Context, userID string) ([]models.Place, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrEmptyRequesterID)
	}

	return v.inner.GetPlacesByUserID(ctx, userID)
}

func (v *PlaceValidationService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Place{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.UpdatePlace(ctx, req)
}

func (v *PlaceValidationService) DeletePlace(ctx context.Context, req models.DeletePlaceRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.DeletePlace(ctx, req)
}

func (v *PlaceValidationService) Wrap(wrapper PlaceService) PlaceService {
	v.inner = wrapper
	return v
}
