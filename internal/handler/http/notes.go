package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListNotes(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, listOf(notes), http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if !decodeJSON(w, r, &note) {
		return
	}
	note.UserID = userID(r)

	created, err := h.services.NoteService.AddNote(r.Context(), note)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteID")
	if !ok {
		return
	}

	var update models.NoteUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	update.ID = noteID
	update.UserID = userID(r)

	note, err := h.services.NoteService.UpdateNote(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) toggleImportant(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteID")
	if !ok {
		return
	}

	note, err := h.services.NoteService.ToggleImportant(r.Context(), userID(r), noteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteID")
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID(r), noteID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
