package mock

import "github.com/qverkk/aocfetch"

var _ aocfetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of aocfetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
