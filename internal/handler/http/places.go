package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPlaceByID(w http.ResponseWriter, r *http.Request) {
	place, err := h.services.PlaceService.GetPlaceByID(r.Context(), chi.URLParam(r, "placeId"))
	if err != nil {
		h.fail(w, r, err, opGetPlace, "")
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusOK)
}

func (h *Handler) getPlacesByUserID(w http.ResponseWriter, r *http.Request) {
	places, err := h.services.PlaceService.GetPlacesByUserID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err, opGetUserPlaces, "")
		return
	}

	utils.WriteJSON(w, models.PlacesResponse{Places: places}, http.StatusOK)
}

// createPlace reads a multipart form with title, description, address and
// image. The creator is the authenticated user, never a form field.
func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		h.fail(w, r, ErrNoUserInContext, opCreatePlace, "")
		return
	}

	image, err := h.parseImageForm(w, r)
	if err != nil {
		h.fail(w, r, err, opCreatePlace, "")
		return
	}

	place, err := h.services.PlaceService.CreatePlace(ctx, models.CreatePlaceRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
		Image:       image,
		Creator:     userID,
	})
	if err != nil {
		h.fail(w, r, err, opCreatePlace, image)
		return
	}

	logger.FromRequest(r).Debug().Str("place_id", place.ID).Str("user_id", userID).Msg("place created")

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusCreated)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		h.fail(w, r, ErrNoUserInContext, opUpdatePlace, "")
		return
	}

	var req models.UpdatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), opUpdatePlace, "")
		return
	}
	req.PlaceID = chi.URLParam(r, "placeId")
	req.RequesterID = userID

	place, err := h.services.PlaceService.UpdatePlace(ctx, req)
	if err != nil {
		h.fail(w, r, err, opUpdatePlace, "")
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusOK)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		h.fail(w, r, ErrNoUserInContext, opDeletePlace, "")
		return
	}

	err := h.services.PlaceService.DeletePlace(ctx, models.DeletePlaceRequest{
		PlaceID:     chi.URLParam(r, "placeId"),
		RequesterID: userID,
	})
	if err != nil {
		h.fail(w, r, err, opDeletePlace, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeletedPlace}, http.StatusOK)
}
