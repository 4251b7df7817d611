package mock

import "github.com/fwojciec/docfinder"

var _ docfinder.PageFinder = (*PageFinder)(nil)

// PageFinder is a mock implementation of docfinder.PageFinder.
type PageFinder struct {
	FindPagesFn   func(question string) []docfinder.PageMatch
	AllPageURLsFn func() []string
}

func (f *PageFinder) FindPages(question string) []docfinder.PageMatch {
	return f.FindPagesFn(question)
}

func (f *PageFinder) AllPageURLs() []string {
	return f.AllPageURLsFn()
}
