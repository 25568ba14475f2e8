package aocfetch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// The input is one region as produced by a RegionExtractor.
	Convert(html string) (string, error)
}
