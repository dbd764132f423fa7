package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
)

// appInfoService reports the release the server runs.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("serving app version")
	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
