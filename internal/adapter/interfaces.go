// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the Voy HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. Non-2xx
// responses are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (for example [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/voy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the Voy server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetProfile returns the profile with its protected numbers revealed.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateNumber sets one protected number.
	UpdateNumber(ctx context.Context, update models.NumberUpdate) (models.Profile, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)

	// UploadDocument creates a document. file may be nil for a document
	// without an attachment.
	UploadDocument(ctx context.Context, name, category string, file *models.DocumentFile) (models.Document, error)

	// DownloadDocument copies the attached file of a document into w.
	DownloadDocument(ctx context.Context, documentID string, w io.Writer) (int64, error)

	ListNotes(ctx context.Context) ([]models.Note, error)

	GetServerVersion(ctx context.Context) (string, error)
}
