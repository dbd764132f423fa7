// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags, so the MinIO
// endpoint for example is read from STORAGE_FILES_MINIO_ENDPOINT.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
