// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Salt       = "voy-salt-2026" // fixed application salt
	Iterations = 100000          // PBKDF2 iterations
	KeySize    = 32              // AES-256 key size
	NonceSize  = 12              // GCM nonce size
	TagSize    = 16              // GCM authentication tag size
)

// FieldKey is an AES-256-GCM key derived for one account. It can only seal
// and open; the raw key bytes are not kept.
type FieldKey struct {
	aead cipher.AEAD
}

// DeriveKey derives the field key of userID.
//
// A cancelled ctx is reported before the derivation starts.
func DeriveKey(ctx context.Context, userID string) (*FieldKey, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := pbkdf2.Key([]byte(userID), []byte(Salt), Iterations, KeySize, sha256.New)
	defer clearBytes(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &FieldKey{aead: aead}, nil
}

func (k *FieldKey) seal(nonce, plaintext []byte) []byte {
	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	copy(out, nonce)
	return k.aead.Seal(out, nonce, plaintext, nil)
}

func (k *FieldKey) open(payload []byte) ([]byte, error) {
	if len(payload) < NonceSize+TagSize {
		return nil, ErrPayloadTooShort
	}

	plaintext, err := k.aead.Open(nil, payload[:NonceSize], payload[NonceSize:], nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
