package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	update.UserID = userID(r)

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateNumber(w http.ResponseWriter, r *http.Request) {
	var update models.NumberUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	profile, err := h.services.ProfileService.UpdateNumber(r.Context(), userID(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
