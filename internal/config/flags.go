// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair accepted by the -a flag.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line into a partial [StructuredConfig].
// Unset flags leave their fields zero so that other sources can fill them.
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var (
		databaseDSN     string
		filesBackend    string
		filesDir        string
		minioEndpoint   string
		minioBucket     string
		jsonConfigPath  string
		passwordHashKey string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		requestTimeout  time.Duration
		maxUploadSize   int64
		redisAddress    string
		maxAttempts     int
		limiterWindow   time.Duration
		reminderEvery   time.Duration
		version         string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesBackend, "files-backend", "", "Document storage backend: local or minio")
	fs.StringVar(&filesDir, "f", "", "Local document storage directory")
	fs.StringVar(&minioEndpoint, "minio-endpoint", "", "MinIO endpoint host:port")
	fs.StringVar(&minioBucket, "minio-bucket", "", "MinIO bucket")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum document upload size in bytes")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for login throttling")
	fs.IntVar(&maxAttempts, "login-max-attempts", 0, "Failed logins allowed per window")
	fs.DurationVar(&limiterWindow, "login-window", 0, "Login throttling window")
	fs.DurationVar(&reminderEvery, "reminder-interval", 0, "Note reminder polling interval")
	fs.StringVar(&version, "version", "", "Application version reported by /api/version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			Version:         version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Backend: filesBackend,
				Dir:     filesDir,
				MinIO: MinIO{
					Endpoint: minioEndpoint,
					Bucket:   minioBucket,
				},
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Limiter: Limiter{
			RedisAddress: redisAddress,
			MaxAttempts:  maxAttempts,
			Window:       limiterWindow,
		},
		Workers: Workers{
			ReminderInterval: reminderEvery,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
