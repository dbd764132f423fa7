package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

type quickAccessToggleResponse struct {
	DocumentID string `json:"document_id"`
	Pinned     bool   `json:"pinned"`
}

func (h *Handler) listQuickAccess(w http.ResponseWriter, r *http.Request) {
	documentIDs, err := h.services.QuickAccessService.ListQuickAccess(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.QuickAccess{DocumentIDs: listOf(documentIDs)}, http.StatusOK)
}

func (h *Handler) toggleQuickAccess(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	pinned, err := h.services.QuickAccessService.ToggleQuickAccess(r.Context(), userID(r), documentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quickAccessToggleResponse{DocumentID: documentID, Pinned: pinned}, http.StatusOK)
}

func (h *Handler) replaceQuickAccess(w http.ResponseWriter, r *http.Request) {
	var request models.QuickAccess
	if !decodeJSON(w, r, &request) {
		return
	}

	ctx := r.Context()
	if err := h.services.QuickAccessService.ReplaceQuickAccess(ctx, userID(r), request.DocumentIDs); err != nil {
		writeError(w, r, err)
		return
	}

	documentIDs, err := h.services.QuickAccessService.ListQuickAccess(ctx, userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.QuickAccess{DocumentIDs: listOf(documentIDs)}, http.StatusOK)
}
