package http

import (
	"net/http"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

type renameCategoryRequest struct {
	Label string `json:"label"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, listOf(categories), http.StatusOK)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeJSON(w, r, &category) {
		return
	}
	category.UserID = userID(r)

	created, err := h.services.CategoryService.AddCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryID")
	if !ok {
		return
	}

	var request renameCategoryRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	category, err := h.services.CategoryService.RenameCategory(r.Context(), userID(r), categoryID, request.Label)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryID")
	if !ok {
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), userID(r), categoryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
