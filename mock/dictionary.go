package mock

import (
	"context"

	"github.com/fwojciec/wordhord"
)

var _ wordhord.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of wordhord.Dictionary.
type Dictionary struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]*wordhord.Entry, error)
	DefineFn func(ctx context.Context, query string) ([]*wordhord.Entry, error)
}

func (d *Dictionary) Search(ctx context.Context, query string, limit int) ([]*wordhord.Entry, error) {
	return d.SearchFn(ctx, query, limit)
}

func (d *Dictionary) Define(ctx context.Context, query string) ([]*wordhord.Entry, error) {
	return d.DefineFn(ctx, query)
}
