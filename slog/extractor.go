package slog

import (
	"log/slog"
	"time"

	"github.com/qverkk/aocfetch"
)

// Ensure LoggingRegionExtractor implements aocfetch.RegionExtractor.
var _ aocfetch.RegionExtractor = (*LoggingRegionExtractor)(nil)

// LoggingRegionExtractor wraps a RegionExtractor with logging.
type LoggingRegionExtractor struct {
	next   aocfetch.RegionExtractor
	logger *slog.Logger
}

// NewLoggingRegionExtractor creates a new LoggingRegionExtractor.
func NewLoggingRegionExtractor(next aocfetch.RegionExtractor, logger *slog.Logger) *LoggingRegionExtractor {
	return &LoggingRegionExtractor{next: next, logger: logger}
}

// ExtractRegions delegates to the wrapped extractor and logs the region count.
func (e *LoggingRegionExtractor) ExtractRegions(html string) (regions []string) {
	defer func(begin time.Time) {
		e.logger.Info("region extraction",
			"bytes", len(html),
			"regions", len(regions),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractRegions(html)
}
