package mock

import "github.com/qverkk/aocfetch"

// Compile-time interface verification.
var (
	_ aocfetch.RegionExtractor = (*RegionExtractor)(nil)
	_ aocfetch.SampleExtractor = (*SampleExtractor)(nil)
)

// RegionExtractor is a mock implementation of aocfetch.RegionExtractor.
type RegionExtractor struct {
	ExtractRegionsFn func(html string) []string
}

func (e *RegionExtractor) ExtractRegions(html string) []string {
	return e.ExtractRegionsFn(html)
}

// SampleExtractor is a mock implementation of aocfetch.SampleExtractor.
type SampleExtractor struct {
	ExtractSampleFn func(html string) (string, error)
}

func (e *SampleExtractor) ExtractSample(html string) (string, error) {
	return e.ExtractSampleFn(html)
}
