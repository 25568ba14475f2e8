package aocfetch

import "context"

// Fetcher retrieves page bodies from URLs.
type Fetcher interface {
	// Fetch issues a single request and returns the decoded body.
	// Non-2xx responses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}
