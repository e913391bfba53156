package core

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Fuabioo/webfetch/internal/errors"
	"github.com/google/uuid"
)

// Fetcher performs a single outbound HTTP GET per call on behalf of the
// fetch tools. The zero value is not usable; construct one with
// NewFetcher or NewSecureFetcher.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewFetcher creates a Fetcher on the library-default transport, which
// shares its connection pool with every other default-client user in
// the process.
func NewFetcher(cfg *Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: requestTimeout(cfg),
		},
		userAgent: cfg.Fetch.UserAgent,
		maxBytes:  cfg.Fetch.MaxResponseBytes,
	}
}

// NewSecureFetcher creates a Fetcher with an explicitly constructed TLS
// transport on its own connection pool. Certificate validation is the
// standard one either way; the separate instance is the only
// operator-observable difference from NewFetcher.
func NewSecureFetcher(cfg *Config) *Fetcher {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout(cfg),
		},
		userAgent: cfg.Fetch.UserAgent,
		maxBytes:  cfg.Fetch.MaxResponseBytes,
	}
}

// requestTimeout converts the configured per-request timeout; zero
// keeps the client default (no timeout).
func requestTimeout(cfg *Config) time.Duration {
	if cfg.Fetch.RequestTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(cfg.Fetch.RequestTimeoutMS) * time.Millisecond
}

// Fetch performs one GET of rawURL and returns the response body as
// text. One attempt, no retries. The URL is validated before any
// network action; an upstream 4xx/5xx status becomes an
// UPSTREAM_HTTP_ERROR carrying that status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.InvalidURL(rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.InvalidURL(rawURL, fmt.Errorf("unsupported scheme %q", parsed.Scheme))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.InvalidURL(rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.FetchFailed(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errors.UpstreamHTTP(resp.StatusCode, rawURL)
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		return "", err
	}

	return body, nil
}

// readBody reads the response body, enforcing the configured size cap.
func (f *Fetcher) readBody(r io.Reader) (string, error) {
	if f.maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(errors.CodeFetchFailed, "failed to read response body", err)
		}
		return string(data), nil
	}

	// Read one byte past the cap to distinguish "exactly at the limit"
	// from "over it".
	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(errors.CodeFetchFailed, "failed to read response body", err)
	}
	if int64(len(data)) > f.maxBytes {
		return "", errors.LimitExceeded(fmt.Sprintf("response body exceeds %d bytes", f.maxBytes))
	}

	return string(data), nil
}
