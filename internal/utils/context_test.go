// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "success",
			ctx:    WithUserID(context.Background(), "user-42"),
			wantID: "user-42",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
		},
		{
			name: "empty string",
			ctx:  WithUserID(context.Background(), ""),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("otherKey"), "user-42"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}
