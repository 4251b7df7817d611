// Package goquery provides a docfinder.Extractor specialized for GitHub
// repository pages, where the documentation lives in the rendered README.
// The FeatBit SDK pages are GitHub repositories, and generic article
// extraction picks up repository chrome (file listings, commit bars) instead
// of the README body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docfinder"
)

// Ensure ReadmeExtractor implements docfinder.Extractor at compile time.
var _ docfinder.Extractor = (*ReadmeExtractor)(nil)

// readmeSelectors are tried in order and the first match wins. GitHub has
// changed its README markup over the years, so older variants are kept as
// fallbacks behind the current one.
var readmeSelectors = []string{
	"article[itemprop='text']",
	"#readme article",
	"#readme .markdown-body",
	".markdown-body",
}

// ReadmeExtractor extracts the rendered README from a GitHub repository page.
type ReadmeExtractor struct{}

// NewReadmeExtractor creates a new ReadmeExtractor.
func NewReadmeExtractor() *ReadmeExtractor {
	return &ReadmeExtractor{}
}

// Extract returns the README content of a repository page. The title comes
// from the og:title meta tag, falling back to the document title.
// Returns ENOTFOUND if the page has no recognizable README section.
func (e *ReadmeExtractor) Extract(rawHTML string) (*docfinder.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docfinder.Errorf(docfinder.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docfinder.Errorf(docfinder.EINVALID, "failed to parse HTML: %v", err)
	}

	var contentHTML string
	for _, selector := range readmeSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err = goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		break
	}
	if contentHTML == "" {
		return nil, docfinder.Errorf(docfinder.ENOTFOUND, "no readme content found")
	}

	return &docfinder.ExtractResult{
		Title:       title(doc),
		ContentHTML: contentHTML,
	}, nil
}

// title extracts the page title, preferring og:title over the title element.
func title(doc *goquery.Document) string {
	if content, exists := doc.Find("meta[property='og:title']").First().Attr("content"); exists && content != "" {
		return content
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
