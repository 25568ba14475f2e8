// Package slog provides log/slog decorators for aocfetch interfaces.
package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/qverkk/aocfetch"
)

// Ensure LoggingFetcher implements aocfetch.Fetcher.
var _ aocfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every request made to the puzzle site.
//
// Successful fetches are logged at info level with the body size. Failures
// are logged at warn level along with the application error code, which
// separates a locked puzzle (not_found) and a missing or expired session
// (unauthorized) from transport failures (internal).
type LoggingFetcher struct {
	next   aocfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next aocfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)

	attrs := []slog.Attr{
		slog.String("resource", resourceKind(url)),
		slog.String("url", url),
		slog.Duration("duration", time.Since(begin)),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("code", aocfetch.ErrorCode(err)),
			slog.String("err", err.Error()),
		)
		f.logger.LogAttrs(ctx, slog.LevelWarn, "fetch failed", attrs...)
		return "", err
	}

	attrs = append(attrs, slog.Int("bytes", len(body)))
	f.logger.LogAttrs(ctx, slog.LevelInfo, "fetch", attrs...)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// resourceKind reports whether the URL points at a puzzle page or at the
// personal input.
func resourceKind(url string) string {
	if strings.HasSuffix(strings.TrimSuffix(url, "/"), "/input") {
		return "input"
	}
	return "page"
}
