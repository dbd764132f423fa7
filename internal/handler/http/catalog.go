package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
	"github.com/go-chi/chi/v5"
)

type questionsResponse struct {
	Questions []string `json:"questions"`
}

func (h *Handler) listVisaTypes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, listOf(h.services.CatalogService.ListVisaTypes(r.Context())), http.StatusOK)
}

func (h *Handler) getVisaType(w http.ResponseWriter, r *http.Request) {
	visaType, err := h.services.CatalogService.GetVisaType(r.Context(), chi.URLParam(r, "visaID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, visaType, http.StatusOK)
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.services.CatalogService.ListQuestions(r.Context())
	utils.WriteJSON(w, questionsResponse{Questions: listOf(questions)}, http.StatusOK)
}

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	var question models.AssistantQuestion
	if !decodeJSON(w, r, &question) {
		return
	}

	answer, err := h.services.CatalogService.Ask(r.Context(), question.Question)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, answer, http.StatusOK)
}
