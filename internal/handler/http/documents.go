package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

const (
	multipartMemory   = 8 << 20
	multipartOverhead = 1 << 20
)

type documentRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.services.DocumentService.ListDocuments(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, listOf(documents), http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	document, err := h.services.DocumentService.GetDocument(r.Context(), userID(r), documentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

// addDocument accepts either a multipart form with name, category and an
// optional file part, or a JSON body for documents without a file.
func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
	newDocument := models.NewDocument{UserID: userID(r)}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			writeError(w, r, multipartError(err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		newDocument.Name = r.FormValue("name")
		newDocument.Category = r.FormValue("category")

		file, header, err := r.FormFile("file")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			writeError(w, r, multipartError(err))
			return
		default:
			defer file.Close()
			if header.Size > h.maxUploadSize {
				writeError(w, r, ErrFileTooLarge)
				return
			}
			newDocument.File = &models.DocumentFile{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Content:     file,
			}
		}
	} else {
		var request documentRequest
		if !decodeJSON(w, r, &request) {
			return
		}
		newDocument.Name = request.Name
		newDocument.Category = request.Category
	}

	document, err := h.services.DocumentService.AddDocument(r.Context(), newDocument)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusCreated)
}

func multipartError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrFileTooLarge
	}
	return fmt.Errorf("%w: %v", ErrInvalidMultipart, err)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	var update models.DocumentUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	update.ID = documentID
	update.UserID = userID(r)

	document, err := h.services.DocumentService.UpdateDocument(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	if err := h.services.DocumentService.DeleteDocument(r.Context(), userID(r), documentID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(w, r, "documentID")
	if !ok {
		return
	}

	object, err := h.services.DocumentService.DownloadDocument(r.Context(), userID(r), documentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer object.Content.Close()

	w.Header().Set("Content-Type", object.ContentType)
	if object.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(object.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, object.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("document_id", documentID).Msg("failed to stream document file")
	}
}
