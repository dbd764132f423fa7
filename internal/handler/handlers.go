package handler

import (
	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/handler/http"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/service"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
