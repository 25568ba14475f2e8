// Package htmltomarkdown provides an aocfetch.Converter backed by
// JohannesKaufmann/html-to-markdown. It is the tree-based alternative to
// the rules package, selected with --converter commonmark.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/qverkk/aocfetch"
)

// Ensure Converter implements aocfetch.Converter at compile time.
var _ aocfetch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert puzzle regions to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links such as "/2025/day/1/input" against
// the given site root.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithStrongDelimiter("**"),
					commonmark.WithEmDelimiter("*"),
				),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms a region's HTML into Markdown. Empty regions yield an
// empty string.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	var (
		result string
		err    error
	)
	if c.domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", aocfetch.Errorf(aocfetch.EINVALID, "convert region: %v", err)
	}

	return strings.TrimSpace(result), nil
}
