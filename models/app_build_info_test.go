package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

	assert.True(t, info.Known())
	assert.Equal(t, "1.4.0 (2026-10-01, abc123)", info.String())
}

func TestNewAppBuildInfo_Unset(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.False(t, info.Known())
	assert.Equal(t, "N/A (N/A, N/A)", info.String())
}
