// Package rules implements aocfetch.Converter as a fixed, ordered list of
// regexp substitutions tuned to Advent of Code puzzle markup.
//
// Rules match on text, not on a parsed tree. Overlapping or improperly
// nested tags can produce garbled output; that is accepted.
package rules

import (
	"html"
	"regexp"
	"strings"

	"github.com/qverkk/aocfetch"
)

// Ensure Converter implements aocfetch.Converter at compile time.
var _ aocfetch.Converter = (*Converter)(nil)

// Rule is a single substitution step. When Func is set it receives the
// submatches of each match and its result replaces the match; otherwise
// Replacement is expanded as in regexp.Regexp.ReplaceAllString.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	Func        func(groups []string) string
}

// Apply runs the rule once over the whole text.
func (r Rule) Apply(s string) string {
	if r.Func == nil {
		return r.Pattern.ReplaceAllString(s, r.Replacement)
	}
	return r.Pattern.ReplaceAllStringFunc(s, func(m string) string {
		return r.Func(r.Pattern.FindStringSubmatch(m))
	})
}

// DefaultRules returns the conversion rules in application order.
func DefaultRules() []Rule {
	return []Rule{
		// Decorated headers first so the generic rule never sees them.
		{Name: "h2-decorated", Pattern: regexp.MustCompile(`<h2[^>]*>--- (.*?) ---</h2>`), Replacement: "## ${1}\n"},
		{Name: "h2", Pattern: regexp.MustCompile(`<h2[^>]*>(.*?)</h2>`), Replacement: "## ${1}\n"},

		// Italics and bold share a marker.
		{Name: "em", Pattern: regexp.MustCompile(`(?s)<em[^>]*>(.*?)</em>`), Replacement: "**${1}**"},
		{Name: "strong", Pattern: regexp.MustCompile(`(?s)<strong[^>]*>(.*?)</strong>`), Replacement: "**${1}**"},

		{Name: "code", Pattern: regexp.MustCompile(`(?s)<code[^>]*>(.*?)</code>`), Replacement: "`${1}`"},
		{Name: "pre", Pattern: regexp.MustCompile(`(?s)<pre[^>]*>(.*?)</pre>`), Func: fencePre},

		{Name: "link", Pattern: regexp.MustCompile(`(?s)<a[^>]*href="([^"]*)"[^>]*>(.*?)</a>`), Replacement: "[${2}](${1})"},

		{Name: "ul-open", Pattern: regexp.MustCompile(`<ul[^>]*>`), Replacement: "\n"},
		{Name: "ul-close", Pattern: regexp.MustCompile(`</ul>`), Replacement: "\n"},
		{Name: "li", Pattern: regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`), Replacement: "- ${1}\n"},

		{Name: "p", Pattern: regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`), Replacement: "${1}\n\n"},
		{Name: "span", Pattern: regexp.MustCompile(`(?s)<span[^>]*>(.*?)</span>`), Replacement: "${1}"},

		{Name: "strip-tags", Pattern: tagRe, Replacement: ""},
	}
}

var (
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// fencePre turns a preformatted block into a fenced code block. Backticks
// added by the inline code rule are dropped along with any in the source.
func fencePre(groups []string) string {
	content := strings.ReplaceAll(groups[1], "`", "")
	return "\n```\n" + content + "\n```\n"
}

// Converter rewrites HTML fragments to markdown.
type Converter struct {
	rules []Rule
}

// NewConverter creates a Converter using DefaultRules.
func NewConverter() *Converter {
	return &Converter{rules: DefaultRules()}
}

// Convert rewrites the fragment. It never returns an error; markup the
// rules do not recognize is stripped.
func (c *Converter) Convert(fragment string) (string, error) {
	s := fragment
	for _, r := range c.rules {
		s = r.Apply(s)
	}

	// Fragments keep raw source text, so entities are decoded only after
	// all tags are gone and decoded angle brackets cannot be mistaken for tags.
	s = html.UnescapeString(s)

	return Normalize(s), nil
}

// Normalize collapses runs of three or more newlines to a single blank line
// and trims surrounding whitespace.
func Normalize(s string) string {
	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
