package aocfetch

// DefaultRegionTag is the element that holds puzzle descriptions.
const DefaultRegionTag = "article"

// RegionExtractor isolates top-level content regions from an HTML document.
type RegionExtractor interface {
	// ExtractRegions returns the inner HTML of every top-level region in
	// document order. An empty result means the document holds no region.
	// Malformed markup never fails; unterminated regions are dropped.
	ExtractRegions(html string) []string
}

// SampleExtractor finds the example input embedded in a puzzle page.
type SampleExtractor interface {
	// ExtractSample returns the text of the first example block.
	// Returns ENOTFOUND if the page holds no example.
	ExtractSample(html string) (string, error)
}
