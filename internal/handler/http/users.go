package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err, opListUsers, "")
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

// signup reads a multipart form with name, email, password and image and
// answers with the new user's id, e-mail and token.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	image, err := h.parseImageForm(w, r)
	if err != nil {
		h.fail(w, r, err, opSignup, "")
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, models.SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Image:    image,
	})
	if err != nil {
		h.fail(w, r, err, opSignup, image)
		return
	}

	// the account exists from here on, so its image stays even if issuing
	// the token fails
	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.fail(w, r, err, opSignup, "")
		return
	}

	log.Debug().Str("id", registeredUser.ID).Msg("user signed up")

	utils.WriteJSON(w, models.AuthResponse{
		UserID: registeredUser.ID,
		Email:  registeredUser.Email,
		Token:  token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), opLogin, "")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.fail(w, r, err, opLogin, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.fail(w, r, err, opLogin, "")
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		UserID: foundUser.ID,
		Email:  foundUser.Email,
		Token:  token.SignedString,
	}, http.StatusOK)
}
