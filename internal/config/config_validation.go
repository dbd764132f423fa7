package config

import (
	"errors"
	"fmt"
)

// validate checks the server configuration. All problems are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs))
	}

	switch cfg.Storage.Files.Backend {
	case FilesBackendLocal:
		if cfg.Storage.Files.Dir == "" {
			errs = append(errs, fmt.Errorf("%w: local file backend needs a directory", ErrInvalidStorageConfigs))
		}
	case FilesBackendMinIO:
		if cfg.Storage.Files.MinIO.Endpoint == "" || cfg.Storage.Files.MinIO.Bucket == "" {
			errs = append(errs, fmt.Errorf("%w: minio file backend needs endpoint and bucket", ErrInvalidStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown file backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend))
	}

	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key and password hash key are required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs))
	}
	if cfg.Server.MaxUploadSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs))
	}

	if cfg.Limiter.RedisAddress != "" && (cfg.Limiter.MaxAttempts <= 0 || cfg.Limiter.Window <= 0) {
		errs = append(errs, fmt.Errorf("%w: max attempts and window must be positive", ErrInvalidLimiterConfigs))
	}

	if cfg.Workers.ReminderInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: reminder interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
