package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID and e-mail in the request context under
// [utils.UserIDCtxKey] and [utils.EmailCtxKey] before delegating to the next
// handler.
//
// OPTIONS requests pass through untouched. Every other request without a
// valid token is rejected with 403 and {"message":"Authentication failed!"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Message: app.MsgAuthenticationFailed}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Message: app.MsgAuthenticationFailed}, http.StatusForbidden)
			return
		}

		// downstream handlers read the user from the context instead of
		// re-parsing the token
		ctx = utils.WithUser(ctx, token.UserID, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns [ErrEmptyAuthorizationHeader] for an empty header and
// [ErrInvalidAuthorizationHeader] when no token follows the scheme.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
