package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/voy/internal/catalog"
	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/service"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order, so wrapped errors that carry more than
// one sentinel resolve to the first entry.
var errorStatuses = []errorStatus{
	{validators.ErrUnsupportedType, http.StatusInternalServerError},
	{validators.ErrUnknownField, http.StatusInternalServerError},
	{crypto.ErrEncryptionFailed, http.StatusInternalServerError},
	{store.ErrEncodingJSON, http.StatusInternalServerError},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMultipart, http.StatusBadRequest},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{ErrResourceNotFound, http.StatusNotFound},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusForbidden},
	{service.ErrTooManyLoginAttempts, http.StatusTooManyRequests},
	{service.ErrDocumentHasNoFile, http.StatusNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrEmptyPassword, http.StatusBadRequest},
	{validators.ErrWeakPassword, http.StatusBadRequest},
	{validators.ErrInvalidLanguage, http.StatusBadRequest},
	{validators.ErrInvalidUserProfile, http.StatusBadRequest},
	{validators.ErrInvalidTheme, http.StatusBadRequest},
	{validators.ErrInvalidNumberField, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrEmptyName, http.StatusBadRequest},
	{validators.ErrEmptyCategory, http.StatusBadRequest},
	{validators.ErrEmptyTitle, http.StatusBadRequest},
	{validators.ErrEmptyLabel, http.StatusBadRequest},
	{validators.ErrInvalidDocumentID, http.StatusBadRequest},
	{validators.ErrEmptyDocumentName, http.StatusBadRequest},
	{validators.ErrEmptyStepID, http.StatusBadRequest},
	{validators.ErrEmptyProtocol, http.StatusBadRequest},
	{validators.ErrEmptyProcessType, http.StatusBadRequest},
	{validators.ErrInvalidDate, http.StatusBadRequest},
	{validators.ErrEmptyFile, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound},
	{store.ErrDocumentNotFound, http.StatusNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrAimaProcessNotFound, http.StatusNotFound},
	{store.ErrObjectNotFound, http.StatusNotFound},

	{catalog.ErrVisaNotFound, http.StatusNotFound},
	{catalog.ErrQuestionNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
