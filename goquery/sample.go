// Package goquery provides goquery-based implementations of aocfetch interfaces.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qverkk/aocfetch"
)

// Ensure SampleExtractor implements aocfetch.SampleExtractor at compile time.
var _ aocfetch.SampleExtractor = (*SampleExtractor)(nil)

// SampleExtractor finds the example input in the first puzzle article.
// It prefers the first <pre> following a paragraph that mentions an example
// and falls back to the first <pre> in any article.
type SampleExtractor struct {
	keyword string
}

// NewSampleExtractor creates a new SampleExtractor.
func NewSampleExtractor() *SampleExtractor {
	return &SampleExtractor{keyword: "example"}
}

// ExtractSample returns the text of the example block.
func (e *SampleExtractor) ExtractSample(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", aocfetch.Errorf(aocfetch.EINVALID, "failed to parse HTML: %v", err)
	}

	var sample *goquery.Selection
	doc.Find("article").First().Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(p.Text()), e.keyword) {
			return true
		}
		pre := p.NextAllFiltered("pre").First()
		if pre.Length() == 0 {
			return true
		}
		sample = pre
		return false
	})

	if sample == nil {
		if pre := doc.Find("article pre").First(); pre.Length() > 0 {
			sample = pre
		}
	}

	if sample == nil {
		return "", aocfetch.Errorf(aocfetch.ENOTFOUND, "no example block found")
	}

	return sample.Text(), nil
}
