// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-places/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldImage       = "image"
	FieldCreator     = "creator"
	FieldPlaceID     = "place_id"
	FieldRequesterID = "requester_id"
)

// MinDescriptionLength is the minimal number of characters in a place description.
const MinDescriptionLength = 5

// PlaceValidator implements the Validator interface for place requests:
// CreatePlaceRequest, UpdatePlaceRequest and DeletePlaceRequest.
//
// Both value and pointer forms are accepted, and optional field names
// restrict validation to a subset of the default rules.
type PlaceValidator struct {
}

// NewPlaceValidator constructs a new PlaceValidator
// and returns it as the Validator interface.
func NewPlaceValidator() Validator {
	return &PlaceValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known request.
func (v *PlaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePlaceRequest:
		return v.validateCreate(value, fields...)
	case *models.CreatePlaceRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdatePlaceRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdatePlaceRequest:
		return v.validateUpdate(*value, fields...)

	case models.DeletePlaceRequest:
		return v.validateDelete(value, fields...)
	case *models.DeletePlaceRequest:
		return v.validateDelete(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreate checks a new place.
//
// Default validated fields: title, description, address, image, creator.
func (v *PlaceValidator) validateCreate(req models.CreatePlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldAddress, FieldImage, FieldCreator}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(req.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if !hasMinLength(req.Description, MinDescriptionLength) {
				return ErrShortDescription
			}
		case FieldAddress:
			if isBlank(req.Address) {
				return ErrEmptyAddress
			}
		case FieldImage:
			if isBlank(req.Image) {
				return ErrEmptyImage
			}
		case FieldCreator:
			if isBlank(req.Creator) {
				return ErrEmptyRequesterID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks an edit of title and description.
//
// Default validated fields: place_id, title, description, requester_id.
func (v *PlaceValidator) validateUpdate(req models.UpdatePlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlaceID, FieldTitle, FieldDescription, FieldRequesterID}
	}

	for _, f := range fields {
		switch f {
		case FieldPlaceID:
			if isBlank(req.PlaceID) {
				return ErrEmptyPlaceID
			}
		case FieldTitle:
			if isBlank(req.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if !hasMinLength(req.Description, MinDescriptionLength) {
				return ErrShortDescription
			}
		case FieldRequesterID:
			if isBlank(req.RequesterID) {
				return ErrEmptyRequesterID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlaceValidator) validateDelete(req models.DeletePlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlaceID, FieldRequesterID}
	}

	for _, f := range fields {
		switch f {
		case FieldPlaceID:
			if isBlank(req.PlaceID) {
				return ErrEmptyPlaceID
			}
		case FieldRequesterID:
			if isBlank(req.RequesterID) {
				return ErrEmptyRequesterID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}
