// Package goquery implements wordhord.Extractor on top of goquery and the
// golang.org/x/net/html parse tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordhord"
)

// Ensure Extractor implements wordhord.Extractor at compile time.
var _ wordhord.Extractor = (*Extractor)(nil)

// paragraphSelector selects the candidate entry nodes.
const paragraphSelector = "p"

// Extractor recovers dictionary entries from the paragraphs of an HTML
// document.
type Extractor struct {
	marker wordhord.Marker
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarker sets the attribute and value prefix that tag entry paragraphs.
// Defaults to wordhord.DefaultMarker (id="word_...").
func WithMarker(attr, prefix string) Option {
	return func(e *Extractor) {
		e.marker = wordhord.Marker{Attr: attr, Prefix: prefix}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{marker: wordhord.DefaultMarker}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns its entries in document order.
func (e *Extractor) Extract(html string) ([]*wordhord.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wordhord.Errorf(wordhord.EMALFORMED, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(paragraphSelector)
	paragraphs := make([]wordhord.Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		paragraphs = append(paragraphs, wrap(n))
	}

	return wordhord.ExtractEntries(paragraphs, e.marker)
}
