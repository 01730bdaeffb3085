package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

const userAgent = "ats-resume-matcher/1.0"

// NewHTTPClient creates the HTTP client used for completion provider calls.
// The timeout covers the whole request; provider calls are the only
// long-blocking operation in the system.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{next: transport},
	}
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return t.next.RoundTrip(req)
}
