// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/voy/internal/logger"
)

// ProtectedPlaceholder is shown instead of a value that cannot be decrypted.
const ProtectedPlaceholder = "[DADO PROTEGIDO]"

// FieldCipher is the default [Cipher] implementation.
type FieldCipher struct {
	random io.Reader
}

// Option configures a [FieldCipher].
type Option func(*FieldCipher)

// WithRandomSource replaces the nonce source. Intended for tests.
func WithRandomSource(r io.Reader) Option {
	return func(c *FieldCipher) {
		c.random = r
	}
}

// NewFieldCipher constructs a [FieldCipher] reading nonces from crypto/rand.
func NewFieldCipher(opts ...Option) *FieldCipher {
	c := &FieldCipher{random: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [Cipher].
func (c *FieldCipher) Encrypt(ctx context.Context, plaintext, userID string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryptionFailed, err)
	}

	key, err := c.key(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	return base64.StdEncoding.EncodeToString(key.seal(nonce, []byte(plaintext))), nil
}

// Open implements [Cipher].
func (c *FieldCipher) Open(ctx context.Context, encrypted, userID string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	payload, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if len(payload) < NonceSize {
		return "", ErrPayloadTooShort
	}

	key, err := c.key(ctx, userID)
	if err != nil {
		return "", err
	}

	plaintext, err := key.open(payload)
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(plaintext), "\uFFFD"), nil
}

// Decrypt implements [Cipher].
func (c *FieldCipher) Decrypt(ctx context.Context, encrypted, userID string) string {
	plaintext, err := c.Open(ctx, encrypted, userID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("protected field could not be decrypted")
		return ProtectedPlaceholder
	}
	return plaintext
}

func (c *FieldCipher) key(ctx context.Context, userID string) (*FieldKey, error) {
	cache := keyCacheFrom(ctx)
	if cache != nil {
		if key, ok := cache.get(userID); ok {
			return key, nil
		}
	}

	key, err := DeriveKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.put(userID, key)
	}
	return key, nil
}

var defaultCipher = NewFieldCipher()

// Encrypt seals plaintext for userID with the default cipher.
func Encrypt(ctx context.Context, plaintext, userID string) (string, error) {
	return defaultCipher.Encrypt(ctx, plaintext, userID)
}

// Decrypt reveals encrypted for userID with the default cipher, rendering
// failures as [ProtectedPlaceholder].
func Decrypt(ctx context.Context, encrypted, userID string) string {
	return defaultCipher.Decrypt(ctx, encrypted, userID)
}

// Open reveals encrypted for userID with the default cipher.
func Open(ctx context.Context, encrypted, userID string) (string, error) {
	return defaultCipher.Open(ctx, encrypted, userID)
}
