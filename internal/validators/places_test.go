// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCreatePlaceRequest() models.CreatePlaceRequest {
	return models.CreatePlaceRequest{
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world",
		Address:     "20 W 34th St, New York, NY 10001",
		Image:       "uploads/images/p1.png",
		Creator:     "u1",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestPlaceValidator_Dispatch(t *testing.T) {
	v := NewPlaceValidator()
	ctx := context.Background()
	req := validCreatePlaceRequest()

	require.NoError(t, v.Validate(ctx, req))
	require.NoError(t, v.Validate(ctx, &req))
	require.NoError(t, v.Validate(ctx, models.UpdatePlaceRequest{PlaceID: "p1", Title: "t", Description: "12345", RequesterID: "u1"}))
	require.NoError(t, v.Validate(ctx, &models.DeletePlaceRequest{PlaceID: "p1", RequesterID: "u1"}))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestPlaceValidator_Create(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.CreatePlaceRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.CreatePlaceRequest) {}},
		{name: "empty title", modify: func(r *models.CreatePlaceRequest) { r.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "blank title", modify: func(r *models.CreatePlaceRequest) { r.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "description of 4 chars", modify: func(r *models.CreatePlaceRequest) { r.Description = "abcd" }, wantErr: ErrShortDescription},
		{name: "padded description of 4 chars", modify: func(r *models.CreatePlaceRequest) { r.Description = "  abcd " }, wantErr: ErrShortDescription},
		{name: "description of exactly 5 chars", modify: func(r *models.CreatePlaceRequest) { r.Description = "abcde" }},
		{name: "description of 5 multibyte chars", modify: func(r *models.CreatePlaceRequest) { r.Description = "ÄÖÜßé" }},
		{name: "empty address", modify: func(r *models.CreatePlaceRequest) { r.Address = "" }, wantErr: ErrEmptyAddress},
		{name: "no image", modify: func(r *models.CreatePlaceRequest) { r.Image = "" }, wantErr: ErrEmptyImage},
		{name: "no creator", modify: func(r *models.CreatePlaceRequest) { r.Creator = "" }, wantErr: ErrEmptyRequesterID},
	}

	v := NewPlaceValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreatePlaceRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlaceValidator_Create_FieldScoping(t *testing.T) {
	v := NewPlaceValidator()
	req := models.CreatePlaceRequest{Title: "t"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldTitle, FieldAddress), ErrEmptyAddress)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestPlaceValidator_Update(t *testing.T) {
	v := NewPlaceValidator()
	ctx := context.Background()
	valid := models.UpdatePlaceRequest{PlaceID: "p1", Title: "t", Description: "long enough", RequesterID: "u1"}

	noID := valid
	noID.PlaceID = ""
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrEmptyPlaceID)

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, v.Validate(ctx, noTitle), ErrEmptyTitle)

	short := valid
	short.Description = "abc"
	assert.ErrorIs(t, v.Validate(ctx, short), ErrShortDescription)

	anonymous := valid
	anonymous.RequesterID = ""
	assert.ErrorIs(t, v.Validate(ctx, anonymous), ErrEmptyRequesterID)
}

func TestPlaceValidator_Delete(t *testing.T) {
	v := NewPlaceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.DeletePlaceRequest{RequesterID: "u1"}), ErrEmptyPlaceID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeletePlaceRequest{PlaceID: "p1"}), ErrEmptyRequesterID)
}
