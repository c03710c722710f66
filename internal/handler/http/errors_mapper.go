package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusForbidden,
	service.ErrNotPlaceOwner:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	adapter.ErrAddressNotFound: http.StatusBadRequest,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrPlaceNotFound:        http.StatusNotFound,
	store.ErrUnsupportedImageType: http.StatusBadRequest,
	store.ErrImageTooLarge:        http.StatusBadRequest,

	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidForm:     http.StatusBadRequest,
	ErrImageRequired:   http.StatusBadRequest,
	ErrNoUserInContext: http.StatusForbidden,
}

// errorMessageMap holds the messages that do not depend on the operation.
var errorMessageMap = map[error]string{
	store.ErrEmailAlreadyExists:        app.MsgUserExists,
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgAuthenticationFailed,
	ErrNoUserInContext:                 app.MsgAuthenticationFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// operation names a handler and the messages it answers with when the
// failure is not described by errorMessageMap.
type operation struct {
	name     string
	notFound string
	notOwner string
	internal string
}

var (
	opGetPlace = operation{
		name:     "*Handler.getPlaceByID",
		notFound: app.MsgPlaceNotFound,
		internal: app.MsgFetchingPlaceFailed,
	}
	opGetUserPlaces = operation{
		name:     "*Handler.getPlacesByUserID",
		notFound: app.MsgUserPlacesNotFound,
		internal: app.MsgFetchingPlacesFailed,
	}
	opCreatePlace = operation{
		name:     "*Handler.createPlace",
		notFound: app.MsgCreatorNotFound,
		internal: app.MsgCreatingPlaceFailed,
	}
	opUpdatePlace = operation{
		name:     "*Handler.updatePlace",
		notFound: app.MsgPlaceNotFound,
		notOwner: app.MsgNotAllowedToEdit,
		internal: app.MsgUpdatingPlaceFailed,
	}
	opDeletePlace = operation{
		name:     "*Handler.deletePlace",
		notFound: app.MsgDeletePlaceNotFound,
		notOwner: app.MsgNotAllowedToDelete,
		internal: app.MsgDeletingPlaceFailed,
	}
	opListUsers = operation{
		name:     "*Handler.listUsers",
		internal: app.MsgFetchingUsersFailed,
	}
	opSignup = operation{
		name:     "*Handler.signup",
		internal: app.MsgSignupFailed,
	}
	opLogin = operation{
		name:     "*Handler.login",
		internal: app.MsgLoginFailed,
	}
)

func (o operation) message(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidInputs
	case http.StatusNotFound:
		if o.notFound != "" {
			return o.notFound
		}
	case http.StatusUnauthorized:
		if o.notOwner != "" {
			return o.notOwner
		}
	case http.StatusForbidden:
		return app.MsgAuthenticationFailed
	}

	if o.internal != "" {
		return o.internal
	}
	return app.MsgSomethingWentWrong
}

// fail is the single error responder of the package. It writes
// {"message": ...} with the status mapped from err and hands uploadedImage,
// when set, to the image cleaner since the request that stored it failed.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, op operation, uploadedImage string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", op.name).Int("status", status).Msg("request failed")

	if uploadedImage != "" && h.cleaner != nil && !h.cleaner.Enqueue(uploadedImage) {
		log.Warn().Str("image", uploadedImage).Msg("image cleanup queue is full, upload left on disk")
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: op.message(err, status)}, status)
}
