// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-places/internal/access"
	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

// placeService keeps a place and its creator's places list in step.
//
// Writes spanning both tables run through transactor; the image of a
// deleted place is handed to cleaner only after the deletion committed.
type placeService struct {
	placeRepository store.PlaceRepository
	userRepository  store.UserRepository
	transactor      store.Transactor

	geocoder adapter.Geocoder
	cleaner  workers.ImageCleaner
	ids      IDGenerator

	logger *logger.Logger
}

func NewPlaceService(
	storages *store.Storages,
	geocoder adapter.Geocoder,
	cleaner workers.ImageCleaner,
	ids IDGenerator,
	logger *logger.Logger,
) PlaceService {
	return &placeService{
		placeRepository: storages.PlaceRepository,
		userRepository:  storages.UserRepository,
		transactor:      storages.Transactor,
		geocoder:        geocoder,
		cleaner:         cleaner,
		ids:             ids,
		logger:          logger,
	}
}

// CreatePlace geocodes the address, stores the place and appends its id to
// the creator's places list. Both writes commit together or not at all.
//
// Returns store.ErrUserNotFound when the creator does not exist and
// adapter.ErrAddressNotFound when the address cannot be resolved.
func (p *placeService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	log := logger.FromContext(ctx)

	if _, err := p.userRepository.FindUserByID(ctx, req.Creator); err != nil {
		log.Err(err).Str("user_id", req.Creator).Msg("creator lookup failed")
		return models.Place{}, fmt.Errorf("creator lookup failed: %w", err)
	}

	location, err := p.geocoder.Coordinates(ctx, req.Address)
	if err != nil {
		log.Err(err).Str("address", req.Address).Msg("geocoding failed")
		return models.Place{}, fmt.Errorf("geocoding failed: %w", err)
	}

	place := models.Place{
		ID:          p.ids.Generate(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Address:     req.Address,
		Location:    location,
		Image:       req.Image,
		Creator:     req.Creator,
	}

	var created models.Place
	err = p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = p.placeRepository.CreatePlace(ctx, place)
		if txErr != nil {
			return fmt.Errorf("storing place: %w", txErr)
		}

		if txErr = p.userRepository.AppendPlace(ctx, place.Creator, created.ID); txErr != nil {
			return fmt.Errorf("appending place to user: %w", txErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("place_id", place.ID).Str("user_id", place.Creator).Msg("creating place failed")
		return models.Place{}, fmt.Errorf("creating place failed: %w", err)
	}

	return created, nil
}

func (p *placeService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	place, err := p.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("finding place failed: %w", err)
	}

	return place, nil
}

// GetPlacesByUserID returns the places created by userID. It fails with
// store.ErrUserNotFound for an unknown user and returns an empty slice for
// a user without places.
func (p *placeService) GetPlacesByUserID(ctx context.Context, userID string) ([]models.Place, error) {
	if _, err := p.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("finding user failed: %w", err)
	}

	places, err := p.placeRepository.FindPlacesByCreator(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("finding places of user failed")
		return nil, fmt.Errorf("finding places of user failed: %w", err)
	}

	if places == nil {
		places = []models.Place{}
	}
	return places, nil
}

// UpdatePlace changes title and description of a place owned by the
// requester. A non-owner gets ErrNotPlaceOwner.
func (p *placeService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	log := logger.FromContext(ctx)

	place, err := p.placeRepository.FindPlaceByID(ctx, req.PlaceID)
	if err != nil {
		return models.Place{}, fmt.Errorf("finding place failed: %w", err)
	}

	if decision := access.CanMutatePlace(req.RequesterID, place); !decision.Allowed() {
		log.Warn().
			Str("place_id", place.ID).
			Str("requester_id", req.RequesterID).
			Stringer("decision", decision).
			Msg("place update denied")
		return models.Place{}, ErrNotPlaceOwner
	}

	place.Title = strings.TrimSpace(req.Title)
	place.Description = strings.TrimSpace(req.Description)

	updated, err := p.placeRepository.UpdatePlace(ctx, place)
	if err != nil {
		log.Err(err).Str("place_id", place.ID).Msg("updating place failed")
		return models.Place{}, fmt.Errorf("updating place failed: %w", err)
	}

	return updated, nil
}

// DeletePlace removes a place owned by the requester together with its id
// in the owner's places list. After commit the place's image is queued for
// removal; a dropped or failed removal never fails the deletion.
func (p *placeService) DeletePlace(ctx context.Context, req models.DeletePlaceRequest) error {
	log := logger.FromContext(ctx)

	var deleted models.Place
	err := p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		place, txErr := p.placeRepository.FindPlaceByID(ctx, req.PlaceID)
		if txErr != nil {
			return fmt.Errorf("finding place: %w", txErr)
		}

		if decision := access.CanMutatePlace(req.RequesterID, place); !decision.Allowed() {
			log.Warn().
				Str("place_id", place.ID).
				Str("requester_id", req.RequesterID).
				Stringer("decision", decision).
				Msg("place deletion denied")
			return ErrNotPlaceOwner
		}

		if txErr = p.placeRepository.DeletePlace(ctx, place.ID); txErr != nil {
			return fmt.Errorf("deleting place: %w", txErr)
		}
		if txErr = p.userRepository.RemovePlace(ctx, place.Creator, place.ID); txErr != nil {
			return fmt.Errorf("removing place from user: %w", txErr)
		}

		deleted = place
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting place failed: %w", err)
	}

	if deleted.Image != "" && !p.cleaner.Enqueue(deleted.Image) {
		log.Warn().Str("image", deleted.Image).Msg("image cleanup queue is full, file left on disk")
	}

	return nil
}
