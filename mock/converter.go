package mock

import "github.com/fwojciec/docfinder"

var _ docfinder.Converter = (*Converter)(nil)

// Converter is a mock implementation of docfinder.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
