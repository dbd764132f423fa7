package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

func (h *Handler) listChecklist(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ChecklistService.ListChecklist(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, listOf(items), http.StatusOK)
}

func (h *Handler) toggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	var toggle models.ChecklistToggle
	if !decodeJSON(w, r, &toggle) {
		return
	}

	item, err := h.services.ChecklistService.ToggleChecklistItem(r.Context(), userID(r), toggle)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
