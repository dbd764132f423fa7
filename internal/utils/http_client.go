package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "voy-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. A non-positive timeout
// leaves requests bounded only by their context.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
