package mock

import "github.com/fwojciec/wordhord"

var _ wordhord.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordhord.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*wordhord.Entry, error)
}

func (e *Extractor) Extract(html string) ([]*wordhord.Entry, error) {
	return e.ExtractFn(html)
}
