// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations accept both Go duration strings ("30s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			MinIO   struct {
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Bucket    string `json:"bucket"`
				Region    string `json:"region"`
				UseSSL    bool   `json:"use_ssl"`
			} `json:"minio,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Limiter struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		MaxAttempts   int      `json:"max_attempts"`
		Window        Duration `json:"window"`
	} `json:"limiter,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReminderInterval Duration `json:"reminder_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the JSON configuration file at jsonFilePath.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	files := jsonCfg.Storage.Files
	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend: files.Backend,
				Dir:     files.Dir,
				MinIO: MinIO{
					Endpoint:  files.MinIO.Endpoint,
					AccessKey: files.MinIO.AccessKey,
					SecretKey: files.MinIO.SecretKey,
					Bucket:    files.MinIO.Bucket,
					Region:    files.MinIO.Region,
					UseSSL:    files.MinIO.UseSSL,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Limiter: Limiter{
			RedisAddress:  jsonCfg.Limiter.RedisAddress,
			RedisPassword: jsonCfg.Limiter.RedisPassword,
			RedisDB:       jsonCfg.Limiter.RedisDB,
			MaxAttempts:   jsonCfg.Limiter.MaxAttempts,
			Window:        time.Duration(jsonCfg.Limiter.Window),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ReminderInterval: time.Duration(jsonCfg.Workers.ReminderInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a duration string
// or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
