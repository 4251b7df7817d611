package mock

import "github.com/fwojciec/docfinder"

var _ docfinder.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docfinder.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docfinder.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docfinder.ExtractResult, error) {
	return e.ExtractFn(html)
}
