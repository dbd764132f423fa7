// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidMultipart = errors.New("invalid multipart form")
	ErrInvalidGzipBody  = errors.New("invalid gzip body")
	ErrFileTooLarge     = errors.New("uploaded file is too large")
	ErrResourceNotFound = errors.New("resource was not found")
)
