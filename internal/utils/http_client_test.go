package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a.example", time.Second)
	client2 := NewHTTPClient("http://b.example", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, 3*time.Second, NewHTTPClient("http://a.example", 3*time.Second).GetClient().Timeout)
	assert.Zero(t, NewHTTPClient("http://a.example", 0).GetClient().Timeout)
}

func TestHTTPClient_UsesBaseURLAndUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("1.0.0"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "1.0.0", resp.String())
}
