// Package html provides a golang.org/x/net/html tokenizer implementation of
// aocfetch.RegionExtractor.
package html

import (
	"strings"

	"github.com/qverkk/aocfetch"
	"golang.org/x/net/html"
)

// Ensure RegionExtractor implements aocfetch.RegionExtractor at compile time.
var _ aocfetch.RegionExtractor = (*RegionExtractor)(nil)

// voidElements never have a closing tag, so they must not affect depth.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// RegionExtractor collects the inner HTML of every top-level element with a
// given tag name. It streams the document through the tokenizer without
// building a tree, so unbalanced markup degrades instead of being repaired.
type RegionExtractor struct {
	tag string
}

// NewRegionExtractor returns an extractor for regions of the given tag.
// An empty tag selects aocfetch.DefaultRegionTag.
func NewRegionExtractor(tag string) *RegionExtractor {
	if tag == "" {
		tag = aocfetch.DefaultRegionTag
	}
	return &RegionExtractor{tag: strings.ToLower(tag)}
}

// ExtractRegions returns the inner HTML of each top-level region in document order.
func (e *RegionExtractor) ExtractRegions(doc string) []string {
	s := scanner{tag: e.tag}
	z := html.NewTokenizer(strings.NewReader(doc))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a read error; either way an open region is dropped.
			return s.results
		case html.StartTagToken:
			tok := z.Token()
			s.open(tok, voidElements[tok.Data])
		case html.SelfClosingTagToken:
			s.open(z.Token(), true)
		case html.EndTagToken:
			s.close(z.Token().Data)
		case html.TextToken:
			s.text(string(z.Raw()))
		}
	}
}

// scanner is the per-call accumulator for ExtractRegions.
type scanner struct {
	tag      string
	inRegion bool
	depth    int
	buf      strings.Builder
	results  []string
}

func (s *scanner) open(tok html.Token, void bool) {
	if !s.inRegion {
		if tok.Data == s.tag {
			s.inRegion = true
			s.depth = 1
			s.buf.Reset()
		}
		return
	}

	if !void {
		s.depth++
	}
	writeStartTag(&s.buf, tok)
}

func (s *scanner) close(name string) {
	if !s.inRegion {
		return
	}

	if name == s.tag && s.depth == 1 {
		s.results = append(s.results, s.buf.String())
		s.inRegion = false
		s.depth = 0
		return
	}

	s.buf.WriteString("</")
	s.buf.WriteString(name)
	s.buf.WriteByte('>')
	s.depth--
}

func (s *scanner) text(raw string) {
	if s.inRegion {
		s.buf.WriteString(raw)
	}
}

// writeStartTag reconstructs an opening tag with attributes in source order.
// Valueless attributes are written bare. The tokenizer hands values back
// unescaped, so they are re-escaped to keep quotes and '>' from ending the
// tag early.
func writeStartTag(b *strings.Builder, tok html.Token) {
	b.WriteByte('<')
	b.WriteString(tok.Data)
	for _, a := range tok.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Val != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
}
