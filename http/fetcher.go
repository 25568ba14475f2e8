// Package http provides an HTTP-based implementation of aocfetch.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qverkk/aocfetch"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the tool to the Advent of Code servers, as
// requested by the site's automation guidelines.
const DefaultUserAgent = "github.com/qverkk/aocfetch puzzle fetcher"

// Ensure Fetcher implements aocfetch.Fetcher at compile time.
var _ aocfetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies using plain HTTP GET requests.
// Each call issues exactly one request; failures are not retried.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	session   string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithSession sends the given session cookie with every request.
// Bare tokens are prefixed with "session=".
func WithSession(cookie string) Option {
	return func(f *Fetcher) {
		f.session = aocfetch.NormalizeSession(cookie)
	}
}

// WithMinInterval spaces requests at least d apart. Zero disables throttling.
func WithMinInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		if d <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at the given URL, decoded to UTF-8 according to
// the response Content-Type.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.session != "" {
		req.Header.Set("Cookie", f.session)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest && f.session == "":
		return "", aocfetch.Errorf(aocfetch.EUNAUTHORIZED, "HTTP %d for %s: session cookie required", resp.StatusCode, url)
	case resp.StatusCode == http.StatusNotFound:
		return "", aocfetch.Errorf(aocfetch.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body of %s: %w", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
