package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/service"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/go-chi/chi/v5"
)

const defaultMaxUploadSize = 32 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxUploadSize  int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

// decodeJSON reads the request body into dst. On failure it answers 400 and
// reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return false
	}
	return true
}

// userID returns the authenticated account. Routes behind the auth middleware
// always carry it.
func userID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

// pathID reads a UUID path parameter. Anything that is not a UUID cannot
// name an existing row, so it is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !utils.IsUUID(id) {
		writeError(w, r, ErrResourceNotFound)
		return "", false
	}
	return id, true
}

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// writeError answers with the status mapped from err. Server-side failures
// are logged and their details are not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	response := errorResponse{Error: err.Error()}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
		response.Error = http.StatusText(status)
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var passwordErr *validators.PasswordError
	if errors.As(err, &passwordErr) {
		response.Errors = passwordErr.Errors
	}

	utils.WriteJSON(w, response, status)
}

// listOf keeps empty collections encoded as [] instead of null.
func listOf[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
