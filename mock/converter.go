package mock

import "github.com/fwojciec/autohext"

var _ autohext.Converter = (*Converter)(nil)

// Converter is a mock implementation of autohext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
