// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the VOY
// server and CLI client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as signing keys,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// document file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload limits of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Limiter holds the login throttling settings.
	Limiter Limiter `envPrefix:"LIMITER_"`

	// Adapter holds settings used by the CLI client to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the document file storage settings.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-wide secrets and token settings.
type App struct {
	// PasswordHashKey is the HMAC key used to hash account passwords.
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the HS256 key used to sign and verify JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
}

// Server holds HTTP server settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits the size of an uploaded document in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// DB holds the relational database settings.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// File storage backends.
const (
	FilesBackendLocal = "local"
	FilesBackendMinIO = "minio"
)

// Files selects and configures the document file storage.
type Files struct {
	// Backend is either "local" or "minio".
	Backend string `env:"BACKEND"`

	// Dir is the root directory of the local backend.
	Dir string `env:"DIR"`

	// MinIO configures the S3-compatible backend.
	MinIO MinIO `envPrefix:"MINIO_"`
}

// MinIO holds the S3-compatible object storage settings.
type MinIO struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	UseSSL    bool   `env:"USE_SSL"`
}

// Limiter configures login throttling. An empty RedisAddress disables it.
type Limiter struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	MaxAttempts   int           `env:"MAX_ATTEMPTS"`
	Window        time.Duration `env:"WINDOW"`
}

// Adapter holds settings of the CLI client's connection to the server.
type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReminderInterval is how often due note reminders are collected.
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from the environment,
// command-line flags and the optional JSON file, fills the remaining gaps with
// defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
