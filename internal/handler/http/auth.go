package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

type authResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser, http.StatusOK)
}

// writeToken issues a token for user and sends it both in the Authorization
// header and in the body.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, authResponse{UserID: user.UserID, Email: user.Email, Token: token.SignedString}, status)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var request models.ChangePasswordRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), userID(r), request); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkPassword(w http.ResponseWriter, r *http.Request) {
	var request models.PasswordCheckRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	utils.WriteJSON(w, h.services.AuthService.CheckPassword(r.Context(), request.Password), http.StatusOK)
}
