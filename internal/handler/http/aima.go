package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

// getAimaProcess answers null while the user has not started a process.
func (h *Handler) getAimaProcess(w http.ResponseWriter, r *http.Request) {
	process, err := h.services.AimaService.GetProcess(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, process, http.StatusOK)
}

func (h *Handler) updateAimaProcess(w http.ResponseWriter, r *http.Request) {
	var update models.AimaProcessUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	update.UserID = userID(r)

	process, err := h.services.AimaService.UpdateProcess(r.Context(), update)
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) selectProcessType(w http.ResponseWriter, r *http.Request) {
	var request models.AimaProcessTypeSelect
	if !decodeJSON(w, r, &request) {
		return
	}

	process, err := h.services.AimaService.SelectProcessType(r.Context(), userID(r), request.ProcessType)
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) toggleStep(w http.ResponseWriter, r *http.Request) {
	var request models.AimaStepToggle
	if !decodeJSON(w, r, &request) {
		return
	}

	process, err := h.services.AimaService.ToggleStep(r.Context(), userID(r), request.StepID)
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) addImportantDate(w http.ResponseWriter, r *http.Request) {
	var date models.ImportantDate
	if !decodeJSON(w, r, &date) {
		return
	}

	process, err := h.services.AimaService.AddImportantDate(r.Context(), userID(r), date)
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) addProtocol(w http.ResponseWriter, r *http.Request) {
	var request models.AimaProtocol
	if !decodeJSON(w, r, &request) {
		return
	}

	process, err := h.services.AimaService.AddProtocol(r.Context(), userID(r), request.Protocol)
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) clearAimaProcess(w http.ResponseWriter, r *http.Request) {
	process, err := h.services.AimaService.ClearProcess(r.Context(), userID(r))
	h.writeAimaProcess(w, r, process, err)
}

func (h *Handler) writeAimaProcess(w http.ResponseWriter, r *http.Request, process models.AimaProcess, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, process, http.StatusOK)
}
